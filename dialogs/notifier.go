package dialogs

// Notifier shows notifications as alert dialogs.
type Notifier struct{}

func (Notifier) Notify(title, message string) {
	Alert(title + "\n\n" + message)
}
