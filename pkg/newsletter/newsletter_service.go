package newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Recipe-Blog-Backend/entities"
	"Recipe-Blog-Backend/internal/utils"
	"Recipe-Blog-Backend/internal/utils/mailing"

	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	NewsletterService interface {
		Subscribe(ctx context.Context, email string) error
	}

	newsletterService struct {
		newsletterRepository NewsletterRepository
	}
)

func NewNewsletterService(newsletterRepository NewsletterRepository) NewsletterService {
	return &newsletterService{newsletterRepository: newsletterRepository}
}

// Subscribe upserts the address: a previously unsubscribed reader is
// reactivated, a new one gets a confirmation mail. Mail failures are logged
// and never fail the subscription.
func (s *newsletterService) Subscribe(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	existing, err := s.newsletterRepository.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing != nil {
		if existing.Status == entities.SubscriberStatusActive {
			return nil
		}
		existing.Status = entities.SubscriberStatusActive
		existing.SubscribedAt = time.Now()
		existing.UnsubscribedAt = nil
		return s.newsletterRepository.UpdateSubscriber(ctx, existing)
	}

	subscriber := &entities.NewsletterSubscriber{
		ID:           uuid.New(),
		Email:        email,
		Status:       entities.SubscriberStatusActive,
		SubscribedAt: time.Now(),
	}
	if err := s.newsletterRepository.CreateSubscriber(ctx, subscriber); err != nil {
		return err
	}

	s.sendConfirmation(email)
	return nil
}

func (s *newsletterService) sendConfirmation(email string) {
	if utils.GetConfig("SMTP_HOST") == "" {
		log.Warn("SMTP not configured, skipping confirmation mail")
		return
	}

	body := fmt.Sprintf(
		"<p>Thanks for subscribing! New recipes land in your inbox as they are published.</p><p><a href=%q>Browse the latest recipes</a></p>",
		utils.GetConfig("SITE_URL")+"/recipes",
	)
	if err := mailing.SendMail(email, "Welcome to the recipe newsletter", body); err != nil {
		log.Errorf("failed to send confirmation mail to %s: %v", email, err)
	}
}
