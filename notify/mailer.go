package notify

import (
	"fmt"
	"html"
	"io"

	"fms-app/fms/booking"

	"gopkg.in/gomail.v2"
)

type Attachment struct {
	Name string
	Data []byte
}

type Message struct {
	To          []string
	Subject     string
	HTMLBody    string
	Attachments []Attachment
}

type Mailer interface {
	Send(msg Message) error
}

// Dialer is satisfied by *gomail.Dialer.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

type SMTPMailer struct {
	dialer Dialer
	from   string
}

func NewSMTPMailer(host string, port int, user, password, from string) *SMTPMailer {
	return &SMTPMailer{dialer: gomail.NewDialer(host, port, user, password), from: from}
}

func NewSMTPMailerWithDialer(d Dialer, from string) *SMTPMailer {
	return &SMTPMailer{dialer: d, from: from}
}

func (m *SMTPMailer) Send(msg Message) error {
	if len(msg.To) == 0 {
		return nil
	}

	gm := gomail.NewMessage()
	gm.SetHeader("From", m.from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTMLBody)
	for _, a := range msg.Attachments {
		data := a.Data
		gm.Attach(a.Name, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(data)
			return err
		}))
	}

	return m.dialer.DialAndSend(gm)
}

// NopMailer is used when SMTP is not configured.
type NopMailer struct{}

func (NopMailer) Send(Message) error { return nil }

func New(host string, port int, user, password, from string) Mailer {
	if host == "" {
		return NopMailer{}
	}
	return NewSMTPMailer(host, port, user, password, from)
}

// ShippingRequestMail announces a sent S/R with its PDF attached.
func ShippingRequestMail(b booking.Booking, to []string, pdf []byte, filename string) Message {
	sr := booking.ShippingRequest{}
	if b.ShippingRequest != nil {
		sr = *b.ShippingRequest
	}
	e := html.EscapeString
	body := fmt.Sprintf(`
		<p>Shipping Request <b>%s</b> has been sent for booking <b>%s</b>.</p>
		<table>
			<tr><td>Carrier</td><td>%s</td></tr>
			<tr><td>Vessel / Voyage</td><td>%s / %s</td></tr>
			<tr><td>POL &rarr; POD</td><td>%s &rarr; %s</td></tr>
			<tr><td>Shipping date</td><td>%s</td></tr>
			<tr><td>Cut-off</td><td>%s %s</td></tr>
			<tr><td>CY</td><td>%s</td></tr>
		</table>`,
		e(b.SRNo), e(b.BookingNo), e(b.Carrier), e(b.Vessel), e(b.Voyage), e(b.POL), e(b.POD),
		e(sr.ShippingDate), e(sr.CutOffDate), e(sr.CutOffTime), e(sr.CYLocation))

	msg := Message{
		To:       to,
		Subject:  fmt.Sprintf("[S/R] %s / %s", b.SRNo, b.BookingNo),
		HTMLBody: body,
	}
	if len(pdf) > 0 {
		msg.Attachments = append(msg.Attachments, Attachment{Name: filename, Data: pdf})
	}
	return msg
}

// ImportSummaryMail reports the result of one batch import file.
func ImportSummaryMail(to []string, file string, created []string, skipped int) Message {
	rows := ""
	for _, no := range created {
		rows += "<li>" + html.EscapeString(no) + "</li>"
	}
	return Message{
		To:      to,
		Subject: fmt.Sprintf("[Batch booking] %s: %d created, %d skipped", file, len(created), skipped),
		HTMLBody: fmt.Sprintf("<p>File <b>%s</b> processed.</p><ul>%s</ul><p>Skipped rows: %d</p>",
			html.EscapeString(file), rows, skipped),
	}
}
