package usecases

// EmailSender delivers account emails. Implemented by the SMTP service;
// tests substitute a recorder.
type EmailSender interface {
	SendVerificationEmail(to, token string) error
}
