package constants

// DefaultDays is how many days simulate runs when neither flag nor config set it.
const DefaultDays = 2

// Shell commands understood by the interactive stepper.
const (
	ShellNext = "next"
	ShellShow = "show"
	ShellQuit = "quit"
	ShellHelp = "help"
)
