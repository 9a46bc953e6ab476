package services

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wicaksana/hadir/internal/models"
	"gopkg.in/gomail.v2"
)

var (
	ErrSMTPNotConfigured = errors.New("smtp configuration missing")
	ErrNoValidRecipients = errors.New("no valid recipients configured")
)

// SMTPConfig comes from the process environment; the dispatcher refuses
// to run without credentials.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

func (config SMTPConfig) Configured() bool {
	return strings.TrimSpace(config.Username) != "" && strings.TrimSpace(config.Password) != ""
}

// LeaveNoticePayload is the dispatcher's wire format. LeaveType and
// Reason carry the human-readable labels resolved by the caller, not the
// stored codes.
type LeaveNoticePayload struct {
	ApplicantName     string `json:"applicantName"`
	ApplicantEmail    string `json:"applicantEmail"`
	Department        string `json:"department"`
	LeaveType         string `json:"leaveType"`
	StartDate         string `json:"startDate"`
	EndDate           string `json:"endDate"`
	Reason            string `json:"reason"`
	AdditionalDetails string `json:"additionalDetails"`
}

type RecipientSource interface {
	EmailRecipients() (models.EmailRecipients, error)
}

// LeaveNotifier sends one email per leave-request submission: no retry,
// no idempotency, concurrent invocations independent of each other.
type LeaveNotifier struct {
	recipients RecipientSource
	smtp       SMTPConfig
	send       func(message *gomail.Message) error
}

func NewLeaveNotifier(recipients RecipientSource, smtp SMTPConfig) *LeaveNotifier {
	notifier := &LeaveNotifier{
		recipients: recipients,
		smtp:       smtp,
	}
	notifier.send = func(message *gomail.Message) error {
		dialer := gomail.NewDialer(smtp.Host, smtp.Port, smtp.Username, smtp.Password)
		// Implicit TLS on 465, STARTTLS is negotiated on everything else.
		dialer.SSL = smtp.Port == 465
		return dialer.DialAndSend(message)
	}
	return notifier
}

// Dispatch sends the notification and returns the message identifier.
// The whole send is best-effort from the submitter's point of view: the
// caller logs failures and never surfaces them.
func (notifier *LeaveNotifier) Dispatch(payload LeaveNoticePayload) (string, error) {
	if !notifier.smtp.Configured() {
		return "", ErrSMTPNotConfigured
	}

	recipients, err := notifier.recipients.EmailRecipients()
	if err != nil {
		return "", fmt.Errorf("load recipients: %w", err)
	}
	to := FilterRecipientAddresses(recipients.LeaveRequest)
	if len(to) == 0 {
		return "", ErrNoValidRecipients
	}

	body, err := renderLeaveNoticeBody(payload)
	if err != nil {
		return "", fmt.Errorf("render leave notice: %w", err)
	}

	messageID := fmt.Sprintf("<%s@hadir>", uuid.NewString())
	message := gomail.NewMessage()
	message.SetHeader("From", message.FormatAddress(notifier.smtp.Username, payload.ApplicantName))
	message.SetHeader("To", to...)
	message.SetHeader("Subject", fmt.Sprintf("Pengajuan Izin Baru: %s - %s", payload.ApplicantName, payload.LeaveType))
	message.SetHeader("Message-ID", messageID)
	message.SetBody("text/html", body)

	if err := notifier.send(message); err != nil {
		return "", fmt.Errorf("send leave notification: %w", err)
	}
	return messageID, nil
}

var leaveNoticeTemplate = template.Must(template.New("leave_notice").Parse(`
<h2>Notifikasi Izin Baru</h2>
<p><strong>Nama:</strong> {{.ApplicantName}}</p>
<p><strong>Email:</strong> {{.ApplicantEmail}}</p>
<p><strong>Departemen:</strong> {{.Department}}</p>
<p><strong>Jenis Izin:</strong> {{.LeaveType}}</p>
<p><strong>Tanggal Mulai:</strong> {{.StartDate}}</p>
<p><strong>Tanggal Selesai:</strong> {{.EndDate}}</p>
<p><strong>Alasan:</strong></p>
<p>{{.Reason}}</p>
{{if .AdditionalDetails}}<p><strong>Detail Tambahan:</strong></p><p>{{.AdditionalDetails}}</p>{{end}}
<hr>
<p><em>Email ini dikirim otomatis oleh sistem Absensi &amp; Izin Karyawan.</em></p>
`))

type leaveNoticeView struct {
	ApplicantName     string
	ApplicantEmail    string
	Department        string
	LeaveType         string
	StartDate         string
	EndDate           string
	Reason            string
	AdditionalDetails string
}

func renderLeaveNoticeBody(payload LeaveNoticePayload) (string, error) {
	view := leaveNoticeView{
		ApplicantName:     orPlaceholder(payload.ApplicantName),
		ApplicantEmail:    orPlaceholder(payload.ApplicantEmail),
		Department:        orPlaceholder(payload.Department),
		LeaveType:         strings.TrimSpace(payload.LeaveType),
		StartDate:         FormatLeaveNoticeDate(payload.StartDate),
		EndDate:           FormatLeaveNoticeDate(payload.EndDate),
		Reason:            reasonOrFallback(payload.Reason),
		AdditionalDetails: strings.TrimSpace(payload.AdditionalDetails),
	}

	var output bytes.Buffer
	if err := leaveNoticeTemplate.Execute(&output, view); err != nil {
		return "", err
	}
	return output.String(), nil
}

var indonesianMonthNames = []string{
	"Januari", "Februari", "Maret", "April", "Mei", "Juni",
	"Juli", "Agustus", "September", "Oktober", "November", "Desember",
}

// FormatLeaveNoticeDate renders an ISO date or timestamp as an
// Indonesian long date ("10 Maret 2025"); unparseable input is kept
// as-is rather than dropped.
func FormatLeaveNoticeDate(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "N/A"
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", value)
	}
	if err != nil {
		return value
	}
	return fmt.Sprintf("%d %s %d", parsed.Day(), indonesianMonthNames[int(parsed.Month())-1], parsed.Year())
}

func orPlaceholder(value string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return "N/A"
}

func reasonOrFallback(value string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return "Tidak ada alasan yang diberikan."
}
