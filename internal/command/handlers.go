package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/guilhermegouw/phonebook/internal/book"
	"github.com/guilhermegouw/phonebook/internal/contact"
	"github.com/guilhermegouw/phonebook/internal/debug"
)

func (r *Registry) registerDefaults() {
	r.Register(Command{
		Name:        "hello",
		Usage:       "hello",
		Description: "Greet the assistant",
		Handler: func([]string) Result {
			return success("Hello, how can I assist you today?")
		},
	})
	r.Register(Command{
		Name:        "add",
		Usage:       "add <name> <phone>",
		Description: "Add a contact, or another phone to an existing contact",
		MinArgs:     2,
		MaxArgs:     2,
		Handler:     r.add,
	})
	r.Register(Command{
		Name:        "change",
		Usage:       "change <name> <new_phone>",
		Description: "Replace the first phone number of a contact",
		MinArgs:     2,
		MaxArgs:     2,
		Handler:     r.change,
	})
	r.Register(Command{
		Name:        "phone",
		Usage:       "phone <name>",
		Description: "Show the phone numbers of a contact",
		MinArgs:     1,
		MaxArgs:     1,
		Handler:     r.phone,
	})
	r.Register(Command{
		Name:        "remove-phone",
		Usage:       "remove-phone <name> <phone>",
		Description: "Remove every copy of a phone number from a contact",
		MinArgs:     2,
		MaxArgs:     2,
		Handler:     r.removePhone,
	})
	r.Register(Command{
		Name:        "all",
		Usage:       "all",
		Description: "List every contact",
		Handler:     r.all,
	})
	r.Register(Command{
		Name:        "add-birthday",
		Usage:       "add-birthday <name> <DD.MM.YYYY>",
		Description: "Set the birthday of a contact",
		MinArgs:     2,
		MaxArgs:     2,
		Handler:     r.addBirthday,
	})
	r.Register(Command{
		Name:        "show-birthday",
		Usage:       "show-birthday <name>",
		Description: "Show the birthday of a contact",
		MinArgs:     1,
		MaxArgs:     1,
		Handler:     r.showBirthday,
	})
	r.Register(Command{
		Name:        "birthdays",
		Usage:       "birthdays [days]",
		Description: "List birthdays coming up in the next days",
		MaxArgs:     1,
		Handler:     r.birthdays,
	})
	r.Register(Command{
		Name:        "delete",
		Usage:       "delete <name>",
		Description: "Delete a contact",
		MinArgs:     1,
		MaxArgs:     1,
		Handler:     r.deleteContact,
	})
	r.Register(Command{
		Name:        "help",
		Usage:       "help",
		Description: "Show this list",
		Handler:     r.help,
	})
	r.Register(Command{
		Name:        "close",
		Aliases:     []string{"exit"},
		Usage:       "close",
		Description: "Leave the phonebook",
		Handler: func([]string) Result {
			return Result{Output: "Good bye!", Quit: true}
		},
	})
}

func (r *Registry) add(args []string) Result {
	name, number := args[0], args[1]

	if _, ok := r.book.Find(name); ok {
		if err := r.book.AddPhone(name, number); err != nil {
			return errorResult("add", err)
		}
		return success("Phone %s added to %s", number, name)
	}

	rec, err := contact.NewRecord(name)
	if err != nil {
		return errorResult("add", err)
	}
	if err := rec.AddPhone(number); err != nil {
		return errorResult("add", err)
	}
	if _, err := r.book.AddRecord(rec); err != nil {
		return errorResult("add", err)
	}
	return success("Contact %s added", name)
}

func (r *Registry) change(args []string) Result {
	name, number := args[0], args[1]

	rec, ok := r.book.Find(name)
	if !ok {
		return failure("Contact %s not found", name)
	}
	if len(rec.Phones()) == 0 {
		return failure("Contact %s has no phone numbers", name)
	}
	if err := r.book.ChangePhone(name, number); err != nil {
		return errorResult("change", err)
	}
	return success("Phone number for %s changed", name)
}

func (r *Registry) phone(args []string) Result {
	name := args[0]

	phones, ok := r.book.ShowPhone(name)
	if !ok {
		return failure("Contact %s not found", name)
	}
	if phones == "" {
		return success("Contact %s has no phone numbers", name)
	}
	return success("%s", phones)
}

func (r *Registry) removePhone(args []string) Result {
	name, number := args[0], args[1]

	rec, ok := r.book.Find(name)
	if !ok {
		return failure("Contact %s not found", name)
	}
	if _, ok := rec.FindPhone(number); !ok {
		return failure("Contact %s has no phone %s", name, number)
	}
	if err := r.book.RemovePhone(name, number); err != nil {
		return errorResult("remove-phone", err)
	}
	return success("Phone %s removed from %s", number, name)
}

func (r *Registry) all([]string) Result {
	if r.book.Len() == 0 {
		return success("No contacts saved")
	}
	return success("%s", r.book.ListAll())
}

func (r *Registry) addBirthday(args []string) Result {
	name, raw := args[0], args[1]

	if _, ok := r.book.Find(name); !ok {
		return failure("Contact %s not found", name)
	}
	b, err := contact.ParseBirthday(raw)
	if err != nil {
		return errorResult("add-birthday", err)
	}
	if err := r.book.SetBirthday(name, b); err != nil {
		return errorResult("add-birthday", err)
	}
	return success("Birthday added for %s", name)
}

func (r *Registry) showBirthday(args []string) Result {
	name := args[0]

	if rec, ok := r.book.Find(name); ok {
		if b, ok := rec.Birthday(); ok {
			return success("Birthday for %s: %s", name, b)
		}
	}
	return failure("Contact %s does not have a birthday or not found", name)
}

func (r *Registry) birthdays(args []string) Result {
	window := r.opts.WindowDays
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 0 {
			return failure("Invalid number of days: %s", args[0])
		}
		window = n
	}

	upcoming := r.book.UpcomingBirthdays(r.opts.Now(), window, r.opts.WindowMode)
	if len(upcoming) == 0 {
		return success("No birthdays within the next %s.", plural(window, "day"))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Upcoming birthdays within the next %s:", plural(window, "day"))
	for _, u := range upcoming {
		fmt.Fprintf(&sb, "\n  %s (%s)", u.Record, when(u.Days))
	}
	return success("%s", sb.String())
}

func (r *Registry) deleteContact(args []string) Result {
	name := args[0]

	if err := r.book.Delete(name); err != nil {
		if errors.Is(err, book.ErrNotFound) {
			return failure("Contact %s not found", name)
		}
		return errorResult("delete", err)
	}
	return success("Contact %s deleted", name)
}

func (r *Registry) help([]string) Result {
	var sb strings.Builder
	sb.WriteString("| Command | Description |\n|---|---|\n")
	for _, c := range r.order {
		usage := "`" + c.Usage + "`"
		for _, alias := range c.Aliases {
			usage += ", `" + alias + "`"
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", usage, c.Description)
	}
	return Result{Output: sb.String(), Markdown: true}
}

// errorResult renders err as a user-facing message.
func errorResult(cmd string, err error) Result {
	debug.Error("command", err, cmd)

	switch {
	case errors.Is(err, contact.ErrInvalidPhone):
		return failure("Invalid phone number. Use %d digits", contact.PhoneLength)
	case errors.Is(err, contact.ErrInvalidBirthdayFormat):
		return failure("Invalid birthday format. Use DD.MM.YYYY")
	case errors.Is(err, contact.ErrInvalidName):
		return failure("Contact name cannot be empty")
	case errors.Is(err, book.ErrNotFound):
		return failure("Contact not found")
	default:
		return failure("Error: %v", err)
	}
}

func when(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return "in " + plural(days, "day")
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}
