// services/reminder_service.go
package services

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/odairorso/Contratoloca-aocarro/models"
	"github.com/odairorso/Contratoloca-aocarro/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// ReminderService notifies lessees the day before a rental contract ends so
// the vehicle comes back on time.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewReminderService(db *gorm.DB) *ReminderService {
	// Initialize Twilio client
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendDailyReminders)

	c.Start()
	log.Println("Return reminder scheduler started")
}

func (s *ReminderService) SendDailyReminders() {
	log.Println("Starting daily return reminder processing...")

	// Get all active accounts
	var accounts []models.User
	if err := s.db.Find(&accounts, "is_active = ?", true).Error; err != nil {
		log.Printf("Failed to fetch accounts: %v", err)
		return
	}

	for _, account := range accounts {
		s.ProcessCompanyReminders(account.ID)
	}

	log.Println("Daily return reminder processing completed")
}

func (s *ReminderService) ProcessCompanyReminders(companyID uuid.UUID) {
	contracts, err := s.getEndingContracts(companyID)
	if err != nil {
		log.Printf("Company %s: Failed to get ending contracts: %v", companyID, err)
		return
	}
	s.sendReminders(companyID, contracts)
}

// getEndingContracts returns the rental contracts whose period ends tomorrow
// and that have not been reminded yet.
func (s *ReminderService) getEndingContracts(companyID uuid.UUID) ([]models.Contract, error) {
	tomorrow := utils.BeginningOfDay(time.Now().AddDate(0, 0, 1))

	var contracts []models.Contract
	err := s.db.
		Where("company_id = ? AND contract_type <> ?", companyID, models.ContractTypeGarage).
		Where("end_date >= ? AND end_date < ?", tomorrow, tomorrow.AddDate(0, 0, 1)).
		Where("id NOT IN (?)", s.db.Model(&models.ReminderLog{}).
			Select("contract_id").
			Where("company_id = ? AND type = ? AND status = ?", companyID, "return", "sent")).
		Find(&contracts).Error
	return contracts, err
}

func (s *ReminderService) sendReminders(companyID uuid.UUID, contracts []models.Contract) {
	for _, contract := range contracts {
		name := contract.ClientData.String("nome")
		phone := contract.ClientData.String("telefone")
		if phone == "" {
			log.Printf("Contract %s: no phone on client snapshot, skipping reminder", contract.Number)
			continue
		}

		endDate := ""
		if contract.EndDate != nil {
			endDate = utils.FormatDateBR(*contract.EndDate)
		}
		message := "Olá " + name + ", sua locação do veículo " +
			contract.ServiceData.String("modelo") + " placa " + contract.ServiceData.String("placa") +
			" termina em " + endDate + ". Favor devolver o veículo até as 8:00 da manhã."

		// Determine channel (WhatsApp if available, else SMS)
		channel := "sms"
		var to string

		// Use WhatsApp if phone is in E.164 format and starts with '+'
		if strings.HasPrefix(phone, "+") {
			to = "whatsapp:" + phone
			channel = "whatsapp"
		} else {
			to = phone
		}

		// Send message via Twilio
		params := &twilioApi.CreateMessageParams{}
		params.SetTo(to)
		params.SetBody(message)

		if channel == "whatsapp" {
			params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
		} else {
			params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
		}

		resp, err := s.client.Api.CreateMessage(params)
		status := "sent"
		errorMsg := ""

		if err != nil {
			log.Printf("Failed to send reminder to %s: %v", phone, err)
			status = "failed"
			errorMsg = err.Error()
		} else if resp.Sid != nil {
			log.Printf("Reminder sent to %s, SID: %s", phone, *resp.Sid)
		} else {
			log.Printf("Reminder sent to %s, but no SID returned", phone)
		}

		reminderLog := models.ReminderLog{
			CompanyID:    companyID,
			ContractID:   contract.ID,
			ClientName:   name,
			Phone:        phone,
			Type:         "return",
			Message:      message,
			Status:       status,
			ErrorMessage: errorMsg,
			Channel:      channel,
			SentAt:       time.Now(),
		}

		if err := s.db.Create(&reminderLog).Error; err != nil {
			log.Printf("Failed to log reminder for contract %s: %v", contract.Number, err)
		}
	}
}
