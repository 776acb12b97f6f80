package domain

import (
	"strconv"
	"strings"
	"time"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/internal/model"
)

func convertRaffleConfig(config *entity.RaffleConfig) model.RaffleConfig {
	if config == nil {
		return model.RaffleConfig{}
	}

	return model.RaffleConfig{
		ID:                 config.ID,
		TicketPrice:        config.TicketPrice,
		PrizeValue:         config.PrizeValue,
		MaxNumber:          config.MaxNumber,
		WinningNumbers:     config.WinningNumbers,
		AutoDrawnNumbers:   config.AutoDrawnNumbers,
		WinningProbability: config.WinningProbability,
		IsActive:           config.IsActive,
		UpdatedAt:          config.UpdatedAt.Format(time.RFC3339),
	}
}

func convertPrize(prize *entity.Prize) model.Prize {
	if prize == nil {
		return model.Prize{}
	}

	return model.Prize{
		ID:          prize.ID,
		Name:        prize.Name,
		Description: prize.Description,
		ImageURL:    prize.ImageURL,
		Value:       prize.Value,
		Rarity:      prize.Rarity,
		IsActive:    prize.IsActive,
		CreatedAt:   prize.CreatedAt.Format(time.RFC3339),
	}
}

// convertOptionalPrize returns nil if the prize was not loaded.
func convertOptionalPrize(prize *entity.Prize) *model.Prize {
	if prize == nil || prize.ID == "" {
		return nil
	}

	p := convertPrize(prize)
	return &p
}

func convertTicket(ticket *entity.Ticket, withEmail bool) model.Ticket {
	if ticket == nil {
		return model.Ticket{}
	}

	t := model.Ticket{
		ID:                ticket.ID,
		UserName:          ticket.UserName,
		Status:            string(ticket.Status),
		DrawnNumbers:      splitNumbers(ticket.DrawnNumbers),
		IsWinner:          ticket.IsWinner,
		Prize:             convertOptionalPrize(&ticket.Prize),
		Amount:            ticket.Amount,
		PaymentExternalID: ticket.PaymentExternalID.Int64,
		CreatedAt:         ticket.CreatedAt.Format(time.RFC3339),
	}

	if withEmail {
		t.UserEmail = ticket.UserEmail
	}

	if ticket.PurchaseDate.Valid {
		t.PurchaseDate = ticket.PurchaseDate.Time.Format(time.RFC3339)
	}

	return t
}

func convertWinner(winner *entity.Winner) model.Winner {
	if winner == nil {
		return model.Winner{}
	}

	return model.Winner{
		ID:           winner.ID,
		TicketID:     winner.TicketID,
		UserName:     winner.UserName,
		UserEmail:    winner.UserEmail,
		DrawnNumbers: splitNumbers(winner.DrawnNumbers),
		Prize:        convertOptionalPrize(&winner.Prize),
		PrizeDate:    winner.PrizeDate.Format(time.RFC3339),
	}
}

func convertBanner(banner *entity.Banner) model.Banner {
	if banner == nil {
		return model.Banner{}
	}

	return model.Banner{
		URL:       banner.URL,
		MobileURL: banner.MobileURL,
	}
}

func splitNumbers(s string) []int {
	numbers := []int{}
	if s == "" {
		return numbers
	}

	for _, part := range strings.Split(s, ",") {
		if n, err := strconv.Atoi(strings.TrimSpace(part)); err == nil {
			numbers = append(numbers, n)
		}
	}

	return numbers
}
