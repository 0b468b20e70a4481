package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/smtp"
	"strings"

	"dowry-calculator/internal/domain"
)

// SMTPSender envia los mensajes de contacto via SMTP.
type SMTPSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	fromName string
	useTLS   bool
}

func NewSMTPSender(host string, port int, username, password, from, fromName string, useTLS bool) (*SMTPSender, error) {
	if strings.TrimSpace(host) == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if strings.TrimSpace(from) == "" {
		return nil, fmt.Errorf("smtp from is required")
	}
	if port == 0 {
		port = 587
	}
	return &SMTPSender{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
		fromName: fromName,
		useTLS:   useTLS,
	}, nil
}

func (s *SMTPSender) SendFeedback(ctx context.Context, toEmail string, feedback domain.Feedback) error {
	if strings.TrimSpace(toEmail) == "" {
		return fmt.Errorf("to email is required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	subject := fmt.Sprintf("Dowry Calculator feedback from %s", sanitizeHeader(feedback.Name))
	body := fmt.Sprintf(
		"Name: %s\nEmail: %s\n\n%s\n",
		feedback.Name,
		feedback.Email,
		feedback.Message,
	)
	msg := feedbackMessage{
		from:     s.from,
		fromName: s.fromName,
		to:       toEmail,
		replyTo:  sanitizeHeader(feedback.Email),
		subject:  subject,
		body:     body,
	}.String()
	addr := fmt.Sprintf("%s:%d", s.host, s.port)

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	if s.useTLS {
		conn, err := tls.Dial("tcp", addr, &tls.Config{
			ServerName: s.host,
		})
		if err != nil {
			return err
		}
		defer conn.Close()

		client, err := smtp.NewClient(conn, s.host)
		if err != nil {
			return err
		}
		defer client.Quit()

		if auth != nil {
			if err := client.Auth(auth); err != nil {
				return err
			}
		}
		if err := client.Mail(s.from); err != nil {
			return err
		}
		if err := client.Rcpt(toEmail); err != nil {
			return err
		}
		writer, err := client.Data()
		if err != nil {
			return err
		}
		if _, err := writer.Write([]byte(msg)); err != nil {
			_ = writer.Close()
			return err
		}
		return writer.Close()
	}

	return smtp.SendMail(addr, auth, s.from, []string{toEmail}, []byte(msg))
}

type feedbackMessage struct {
	from     string
	fromName string
	to       string
	replyTo  string
	subject  string
	body     string
}

// String arma el mensaje RFC 5322 en texto plano.
func (m feedbackMessage) String() string {
	fromHeader := m.from
	if strings.TrimSpace(m.fromName) != "" {
		fromHeader = fmt.Sprintf("%s <%s>", m.fromName, m.from)
	}

	headers := []string{
		fmt.Sprintf("From: %s", fromHeader),
		fmt.Sprintf("To: %s", m.to),
	}
	if m.replyTo != "" {
		headers = append(headers, fmt.Sprintf("Reply-To: %s", m.replyTo))
	}
	headers = append(headers,
		fmt.Sprintf("Subject: %s", m.subject),
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=\"UTF-8\"",
	)

	return strings.Join(headers, "\r\n") + "\r\n\r\n" + m.body
}

// sanitizeHeader evita que un nombre con saltos de linea inyecte cabeceras.
func sanitizeHeader(v string) string {
	v = strings.NewReplacer("\r", " ", "\n", " ").Replace(v)
	return strings.TrimSpace(v)
}
