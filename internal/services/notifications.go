package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/harentsoaR/dental-clinic/internal/models"
	"go.uber.org/zap"
)

// DefaultTextbeltURL is the public Textbelt endpoint.
const DefaultTextbeltURL = "https://textbelt.com/text"

// NotificationService sends appointment confirmations by SMS through Textbelt.
type NotificationService struct {
	url    string
	key    string
	client *http.Client
	logger *zap.Logger
}

func NewNotificationService(url, key string, logger *zap.Logger) *NotificationService {
	if url == "" {
		url = DefaultTextbeltURL
	}
	return &NotificationService{
		url:    url,
		key:    key,
		client: &http.Client{Timeout: 10 * time.Second},
		logger: logger,
	}
}

type textbeltResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	TextID  string `json:"textId"`
}

// SendAppointmentConfirmation sends the SMS in the background so it never
// delays the API response. Failures are only logged.
func (s *NotificationService) SendAppointmentConfirmation(patient *models.Patient, procedure *models.Procedure, apt *models.Appointment) {
	if patient.Phone == "" {
		s.logger.Info("SMS not sent: patient has no phone number", zap.String("patient_id", patient.ID.Hex()))
		return
	}

	when := apt.DateTime
	if t, err := apt.Time(); err == nil {
		when = t.Format("02/01/2006 às 15:04")
	}
	message := fmt.Sprintf("Consulta confirmada: %s para %s em %s.", procedure.Name, patient.Name, when)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.Send(ctx, patient.Phone, message); err != nil {
			s.logger.Warn("failed to send SMS", zap.String("appointment_id", apt.ID.Hex()), zap.Error(err))
		}
	}()
}

// Send delivers one SMS and reports the provider's verdict.
func (s *NotificationService) Send(ctx context.Context, phone, message string) error {
	body, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"key":     s.key,
	})
	if err != nil {
		return fmt.Errorf("failed to encode SMS request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build SMS request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send Textbelt request: %w", err)
	}
	defer resp.Body.Close()

	var result textbeltResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("failed to decode Textbelt response (status %d): %w", resp.StatusCode, err)
	}
	if !result.Success {
		return fmt.Errorf("textbelt rejected SMS: %s", result.Error)
	}

	s.logger.Info("SMS sent", zap.String("text_id", result.TextID))
	return nil
}
