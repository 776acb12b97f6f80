package repository

import (
	"context"
	"time"

	"github.com/rifa-premiada/backend/internal/entity"
	"github.com/rifa-premiada/backend/pkg/xcontext"
	"gorm.io/gorm"
)

type TicketFilter struct {
	Status   entity.TicketStatus
	IsWinner *bool

	Offset int
	Limit  int
}

type TicketStatistic struct {
	Total   int64
	Paid    int64
	Winners int64
	Revenue int64
}

type TicketRepository interface {
	Create(ctx context.Context, data *entity.Ticket) error
	GetByID(ctx context.Context, id string) (*entity.Ticket, error)
	GetByPaymentExternalID(ctx context.Context, externalID int64) (*entity.Ticket, error)
	GetList(ctx context.Context, filter TicketFilter) ([]entity.Ticket, error)
	Count(ctx context.Context, filter TicketFilter) (int64, error)
	UpdateByID(ctx context.Context, id string, data map[string]any) error
	MarkPaid(ctx context.Context, id string, purchaseDate time.Time) error
	DeletePending(ctx context.Context, id string) error
	Statistic(ctx context.Context) (*TicketStatistic, error)
	GetPurchaseDatesSince(ctx context.Context, since time.Time) ([]time.Time, error)
}

type ticketRepository struct{}

func NewTicketRepository() *ticketRepository {
	return &ticketRepository{}
}

func (r *ticketRepository) Create(ctx context.Context, data *entity.Ticket) error {
	return xcontext.DB(ctx).Create(data).Error
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*entity.Ticket, error) {
	var result entity.Ticket
	if err := xcontext.DB(ctx).Preload("Prize", unscoped).Take(&result, "id=?", id).Error; err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ticketRepository) GetByPaymentExternalID(ctx context.Context, externalID int64) (*entity.Ticket, error) {
	var result entity.Ticket
	err := xcontext.DB(ctx).Take(&result, "payment_external_id=?", externalID).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ticketRepository) applyFilter(tx *gorm.DB, filter TicketFilter) *gorm.DB {
	if filter.Status != "" {
		tx = tx.Where("status=?", filter.Status)
	}

	if filter.IsWinner != nil {
		tx = tx.Where("is_winner=?", *filter.IsWinner)
	}

	return tx
}

func (r *ticketRepository) GetList(ctx context.Context, filter TicketFilter) ([]entity.Ticket, error) {
	tx := r.applyFilter(xcontext.DB(ctx).Model(&entity.Ticket{}), filter).
		Preload("Prize", unscoped).
		Order("purchase_date DESC, created_at DESC").
		Offset(filter.Offset)
	if filter.Limit > 0 {
		tx = tx.Limit(filter.Limit)
	}

	var result []entity.Ticket
	if err := tx.Find(&result).Error; err != nil {
		return nil, err
	}

	return result, nil
}

func (r *ticketRepository) Count(ctx context.Context, filter TicketFilter) (int64, error) {
	var result int64
	err := r.applyFilter(xcontext.DB(ctx).Model(&entity.Ticket{}), filter).Count(&result).Error
	if err != nil {
		return 0, err
	}

	return result, nil
}

func (r *ticketRepository) UpdateByID(ctx context.Context, id string, data map[string]any) error {
	return xcontext.DB(ctx).Model(&entity.Ticket{}).Where("id=?", id).Updates(data).Error
}

// MarkPaid moves a pending ticket to paid. It returns gorm.ErrRecordNotFound
// if the ticket is not pending anymore.
func (r *ticketRepository) MarkPaid(ctx context.Context, id string, purchaseDate time.Time) error {
	tx := xcontext.DB(ctx).Model(&entity.Ticket{}).
		Where("id=? AND status=?", id, entity.TicketPending).
		Updates(map[string]any{
			"status":        entity.TicketPaid,
			"purchase_date": purchaseDate,
		})
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *ticketRepository) DeletePending(ctx context.Context, id string) error {
	tx := xcontext.DB(ctx).Delete(&entity.Ticket{}, "id=? AND status=?", id, entity.TicketPending)
	if tx.Error != nil {
		return tx.Error
	}

	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

func (r *ticketRepository) Statistic(ctx context.Context) (*TicketStatistic, error) {
	result := TicketStatistic{}
	db := xcontext.DB(ctx)

	if err := db.Model(&entity.Ticket{}).Count(&result.Total).Error; err != nil {
		return nil, err
	}

	paid := db.Model(&entity.Ticket{}).Where("status=?", entity.TicketPaid)
	if err := paid.Count(&result.Paid).Error; err != nil {
		return nil, err
	}

	err := db.Model(&entity.Ticket{}).
		Where("status=? AND is_winner=?", entity.TicketPaid, true).
		Count(&result.Winners).Error
	if err != nil {
		return nil, err
	}

	err = db.Model(&entity.Ticket{}).
		Where("status=?", entity.TicketPaid).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&result.Revenue).Error
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (r *ticketRepository) GetPurchaseDatesSince(ctx context.Context, since time.Time) ([]time.Time, error) {
	var result []time.Time
	err := xcontext.DB(ctx).Model(&entity.Ticket{}).
		Where("status=? AND purchase_date>=?", entity.TicketPaid, since).
		Pluck("purchase_date", &result).Error
	if err != nil {
		return nil, err
	}

	return result, nil
}

// unscoped keeps soft deleted prizes visible on old tickets and winners.
func unscoped(db *gorm.DB) *gorm.DB {
	return db.Unscoped()
}
