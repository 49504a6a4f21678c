package ports

type Notifier interface {
	Notify(title, message string) error
}
