package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/jeanpaul/birthday/internal/birthday"
	"github.com/jeanpaul/birthday/internal/config"
	"github.com/jeanpaul/birthday/internal/export"
	"github.com/jeanpaul/birthday/internal/notify"
	"github.com/jeanpaul/birthday/internal/store"
	"github.com/jeanpaul/birthday/internal/tui"
	"github.com/jeanpaul/birthday/pkg/version"
)

func main() {
	userFlag := flag.String("user", "", "User id owning the birthday list")
	nameFlag := flag.String("name", "", "Contact name")
	dayFlag := flag.Int("day", 0, "Day of month (1-31)")
	monthFlag := flag.Int("month", 0, "Month (1-12)")
	channelFlag := flag.String("channel", "", "Notification channel (console, email)")
	addressFlag := flag.String("address", "", "Destination address for the email channel")
	withinFlag := flag.Int("within", -1, "Reminder window in days (default from config)")
	formatFlag := flag.String("format", "json", "Export format (json, yaml, xlsx)")
	outputFlag := flag.String("output", "", "Export destination file (default stdout)")
	storeFlag := flag.String("store", "", "Backing file path (overrides config)")
	versionFlag := flag.Bool("version", false, "Print version")
	helpFlag := flag.Bool("help", false, "Show help")
	flag.BoolVar(helpFlag, "h", false, "Show help")
	testFlag := flag.Bool("test", false, "Run the built-in self-check suite")

	flag.Usage = showHelp
	flag.Parse()

	if *helpFlag {
		showHelp()
		os.Exit(0)
	}

	if *versionFlag {
		fmt.Printf("birthday %s (%s)\n", version.Version, version.Commit)
		os.Exit(0)
	}

	if *testFlag {
		os.Exit(runSelfCheck(os.Stdout))
	}

	cfg, err := config.Load()
	if err != nil {
		fatal("config error: %s", err)
	}

	storePath := cfg.StorePath
	if *storeFlag != "" {
		storePath = *storeFlag
	}
	channel := cfg.Channel
	if *channelFlag != "" {
		channel = *channelFlag
	}
	address := cfg.Email.Address
	if *addressFlag != "" {
		address = *addressFlag
	}
	within := cfg.WithinDays
	if *withinFlag >= 0 {
		within = *withinFlag
	}

	args := flag.Args()
	if len(args) == 0 {
		showHelp()
		os.Exit(0)
	}

	st, err := store.Open(storePath)
	if err != nil {
		fatal("%s", err)
	}

	switch args[0] {
	case "add":
		cmdAdd(st, *userFlag, *nameFlag, *dayFlag, *monthFlag)
	case "remove":
		cmdRemove(st, *userFlag, *nameFlag)
	case "list":
		cmdList(st, *userFlag)
	case "remind":
		cmdRemind(st, *userFlag, channel, address, within)
	case "export":
		cmdExport(st, *userFlag, *formatFlag, *outputFlag)
	case "browse":
		cmdBrowse(st, *userFlag)
	case "doctor":
		cmdDoctor(st, storePath)
	case "help":
		showHelp()
	default:
		fatal("unknown command: %s (see 'birthday help')", args[0])
	}
}

func requireUser(user string) {
	if user == "" {
		fatal("--user is required")
	}
}

func cmdAdd(st *store.Store, user, name string, day, month int) {
	requireUser(user)
	if name == "" {
		fatal("--name is required")
	}
	if err := st.Add(user, name, day, month); err != nil {
		fatal("%s", err)
	}
	fmt.Println(tui.BannerStyle.Render("Birthday added and saved."))
}

func cmdRemove(st *store.Store, user, name string) {
	requireUser(user)
	if name == "" {
		fatal("--name is required")
	}
	if err := st.Remove(user, name); err != nil {
		fatal("%s", err)
	}
	fmt.Println(tui.BannerStyle.Render("Birthday removed and saved."))
}

func cmdList(st *store.Store, user string) {
	requireUser(user)
	entries := st.List(user)
	if len(entries) == 0 {
		fmt.Println(tui.HelpStyle.Render("No birthdays saved."))
		return
	}
	for _, b := range birthday.SortCalendar(entries) {
		fmt.Printf("  %s  %s\n",
			tui.NameStyle.Render(fmt.Sprintf("%-20s", b.Name)),
			tui.DateStyle.Render(fmt.Sprintf("%02d.%02d.", b.Day, b.Month)),
		)
	}
}

func cmdRemind(st *store.Store, user, channel, address string, within int) {
	requireUser(user)
	notifier, err := notify.New(channel, address)
	if err != nil {
		fatal("%s", err)
	}

	today := time.Now()
	rems := birthday.Upcoming(st.List(user), today, within)
	if len(rems) == 0 {
		fmt.Println(tui.HelpStyle.Render(fmt.Sprintf("No birthdays in the next %d days.", within)))
		return
	}
	for _, r := range rems {
		if err := notifier.Send(r.Message(user, today)); err != nil {
			fatal("%s", err)
		}
	}
}

func cmdExport(st *store.Store, user, format, output string) {
	f, err := export.ParseFormat(format)
	if err != nil {
		fatal("%s", err)
	}

	users := st.All()
	if user != "" {
		users = map[string][]birthday.Birthday{user: st.List(user)}
	}

	out := os.Stdout
	if output != "" {
		file, err := os.Create(output)
		if err != nil {
			fatal("export: %s", err)
		}
		defer file.Close()
		out = file
	}
	if err := export.Write(out, users, f); err != nil {
		fatal("%s", err)
	}
	if output != "" {
		fmt.Println(tui.BannerStyle.Render("Exported to " + output))
	}
}

func cmdBrowse(st *store.Store, user string) {
	requireUser(user)
	// within a year covers every stored entry
	rems := birthday.Upcoming(st.List(user), time.Now(), 366)
	if err := tui.Browse(user, rems); err != nil {
		fatal("%s", err)
	}
}

func cmdDoctor(st *store.Store, storePath string) {
	fmt.Println(tui.BannerStyle.Render("  Birthday Reminder Health Check"))
	fmt.Println()

	fmt.Printf("  %s %s ... ", tui.DateStyle.Render("●"), tui.NameStyle.Render("config"))
	if _, err := os.Stat(config.Path()); err == nil {
		fmt.Println(tui.BannerStyle.Render("✓ " + config.Path()))
	} else {
		fmt.Println(tui.HelpStyle.Render("- Using defaults (create " + config.Path() + " to customize)"))
	}

	fmt.Printf("  %s %s ... ", tui.DateStyle.Render("●"), tui.NameStyle.Render("store"))
	if _, err := os.Stat(storePath); err == nil {
		users := st.Users()
		entries := 0
		for _, u := range users {
			entries += len(st.List(u))
		}
		fmt.Println(tui.BannerStyle.Render(fmt.Sprintf("✓ %s (%d users, %d birthdays)", storePath, len(users), entries)))
	} else {
		fmt.Println(tui.HelpStyle.Render("- Not created yet (" + storePath + ")"))
	}
}

func fatal(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, tui.ErrorStyle.Render("error: "+msg))
	os.Exit(1)
}

func showHelp() {
	help := `
` + tui.BannerStyle.Render("Birthday") + ` - birthday reminders for your terminal

` + tui.NameStyle.Render("USAGE:") + `
  birthday [flags] <command>

` + tui.NameStyle.Render("COMMANDS:") + `
  add                         Add a birthday (--user, --name, --day, --month)
  remove                      Remove all entries for a contact (--user, --name)
  list                        List a user's birthdays by calendar date
  remind                      Notify about birthdays in the reminder window
  export                      Export birthdays (--format json|yaml|xlsx)
  browse                      Browse upcoming birthdays interactively
  doctor                      Check config and store health
  help                        Show this help

` + tui.NameStyle.Render("FLAGS:") + `
  --user <id>                 User id owning the birthday list
  --name <contact>            Contact name
  --day <1-31> --month <1-12> Date of the birthday
  --channel <name>            console (default) or email
  --address <email>           Destination for the email channel
  --within <days>             Reminder window (default 7)
  --format <fmt>              Export format: json, yaml, xlsx
  --output <path>             Export destination (default stdout)
  --store <path>              Backing file (default ~/.birthday_reminder.json)
  --test                      Run the built-in self-check suite
  --version                   Show version
  --help, -h                  Show this help

` + tui.NameStyle.Render("EXAMPLES:") + `
  birthday --user alice --name Bob --day 24 --month 1 add
  birthday --user alice list
  birthday --user alice --channel console remind
  birthday --user alice --channel email --address a@b.c --within 14 remind

` + tui.HelpStyle.Render("Config: ~/.config/birthday/config.yaml (env prefix BIRTHDAY_)") + `
`
	fmt.Println(help)
}
