package mail

type ReminderEmailData struct {
	LeadName string
	Date     string
	Time     string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
}
