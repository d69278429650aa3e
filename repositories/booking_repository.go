package repositories

import (
	"context"
	"errors"

	"fms-app/controllers/helpers"
	"fms-app/fms/booking"
	"fms-app/fms/cargo"
	"fms-app/models"
	"fms-app/types"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrVersionConflict = errors.New("booking was modified by another request")
)

// BookingQuery is the coarse filter applied in the database before list filtering.
type BookingQuery struct {
	Mode   cargo.Mode
	Status booking.Status
}

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) Create(ctx context.Context, b booking.Booking, actor int) error {
	row := createRow(b, actor)
	return r.db.WithContext(ctx).Create(&row).Error
}

// CreateMany stores every booking in one transaction. Nothing is kept when one insert fails.
func (r *BookingRepository) CreateMany(ctx context.Context, bs []booking.Booking, actor int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, b := range bs {
			row := createRow(b, actor)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func createRow(b booking.Booking, actor int) models.Booking {
	row := ToModel(b)
	row.CreatedBy = actor
	row.UpdatedBy = actor
	if row.ShippingRequest != nil {
		row.ShippingRequest.CreatedBy = actor
	}
	return row
}

// Update writes b when its version still matches the stored one and bumps b.Version.
func (r *BookingRepository) Update(ctx context.Context, b *booking.Booking, actor int) error {
	row := ToModel(*b)
	row.Version = b.Version + 1
	row.UpdatedBy = actor

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Booking{}).
			Where("id = ? AND version = ?", b.ID, b.Version).
			Select("*").
			Omit("id", "created_at", "created_by", "deleted_at", "deleted_by", "Lines", "ShippingRequest").
			Updates(&row)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVersionConflict
		}

		if err := tx.Where("booking_id = ?", b.ID).Delete(&models.BookingCargoLine{}).Error; err != nil {
			return err
		}
		if len(row.Lines) > 0 {
			if err := tx.Create(&row.Lines).Error; err != nil {
				return err
			}
		}

		if row.ShippingRequest != nil {
			row.ShippingRequest.CreatedBy = actor
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(row.ShippingRequest).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	b.Version = row.Version
	return nil
}

func (r *BookingRepository) Get(ctx context.Context, id types.SnowflakeID) (booking.Booking, error) {
	var row models.Booking
	err := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("ShippingRequest").
		First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return booking.Booking{}, ErrBookingNotFound
	}
	if err != nil {
		return booking.Booking{}, err
	}
	return ToDomain(row), nil
}

// List returns bookings newest first.
func (r *BookingRepository) List(ctx context.Context, q BookingQuery) ([]booking.Booking, error) {
	query := r.db.WithContext(ctx).
		Preload("Lines", func(db *gorm.DB) *gorm.DB { return db.Order("seq ASC") }).
		Preload("ShippingRequest")
	if q.Mode != "" {
		query = query.Where("mode = ?", string(q.Mode))
	}
	if q.Status != "" {
		query = query.Where("status = ?", string(q.Status))
	}

	var rows []models.Booking
	if err := query.Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]booking.Booking, 0, len(rows))
	for _, row := range rows {
		out = append(out, ToDomain(row))
	}
	return out, nil
}

// Delete soft-deletes the given bookings.
func (r *BookingRepository) Delete(ctx context.Context, ids []types.SnowflakeID, actor int) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Booking{}).Where("id IN ?", ids).Update("deleted_by", actor).Error; err != nil {
			return err
		}
		return tx.Where("id IN ?", ids).Delete(&models.Booking{}).Error
	})
}

func (r *BookingRepository) AppendHistory(ctx context.Context, entry models.TransactionHistory) error {
	return helpers.InsertTransactionHistory(r.db.WithContext(ctx),
		entry.RefID, entry.RefNo, entry.Status, entry.Type, entry.Detail, entry.CreatedBy)
}

func (r *BookingRepository) History(ctx context.Context, id types.SnowflakeID) ([]models.TransactionHistory, error) {
	var rows []models.TransactionHistory
	err := r.db.WithContext(ctx).
		Where("ref_id = ?", id).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

// NextNumber issues the next PREFIX-YYYY-NNNN. Soft-deleted bookings keep their numbers.
func (r *BookingRepository) NextNumber(ctx context.Context, prefix string, year int) (string, error) {
	col, err := numberColumn(prefix)
	if err != nil {
		return "", err
	}

	var last []string
	err = r.db.WithContext(ctx).Unscoped().
		Model(&models.Booking{}).
		Where(col+" LIKE ?", numberHead(prefix, year)+"%").
		Order(col+" DESC").
		Limit(1).
		Pluck(col, &last).Error
	if err != nil {
		return "", err
	}

	seq := 1
	if len(last) > 0 {
		seq = nextSequence(last[0], prefix, year)
	}
	return FormatNumber(prefix, year, seq), nil
}
