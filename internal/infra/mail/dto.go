package mail

type LeadAlertData struct {
	LeadID       string
	Name         string
	Email        string
	Phone        string
	ServiceName  string
	Budget       string
	ProjectBrief string
	Guest        bool
}

type EmailSender struct {
	Host       string
	Port       int
	User       string
	Password   string
	From       string
	SalesInbox []string
}
