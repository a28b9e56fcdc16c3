// Package program contains the coaching program aggregate. Programs are
// authored by coaches, published to the catalog, and purchased through the
// checkout flow.
package program

import (
	"fmt"
	"strings"
	"time"

	"github.com/coachfit-inc/coachfit/internal/shared/biztime"
	"github.com/coachfit-inc/coachfit/internal/shared/id"
)

const (
	// MaxTitleLength bounds the catalog title.
	MaxTitleLength = 200
)

type Program struct {
	id          string
	coachID     string
	title       string
	description string
	price       int64
	thumbnail   *string

	isActive       bool
	onSale         bool
	saleStopReason *string

	createdAt time.Time
	updatedAt time.Time
}

// NewProgram creates an unpublished program. Price is in whole KRW; zero
// means the program is free to enroll.
func NewProgram(coachID, title, description string, price int64) (*Program, error) {
	if coachID == "" {
		return nil, fmt.Errorf("coach ID is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return nil, fmt.Errorf("title exceeds %d characters", MaxTitleLength)
	}
	if price < 0 {
		return nil, fmt.Errorf("price cannot be negative")
	}

	now := biztime.NowUTC()
	return &Program{
		id:          id.NewUUID(),
		coachID:     coachID,
		title:       title,
		description: description,
		price:       price,
		isActive:    false,
		onSale:      true,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// UpdateDetails changes the catalog-facing fields. Price changes only affect
// orders prepared after the change; existing orders keep their stored amount.
func (p *Program) UpdateDetails(title, description string, price int64) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("title is required")
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("title exceeds %d characters", MaxTitleLength)
	}
	if price < 0 {
		return fmt.Errorf("price cannot be negative")
	}

	p.title = title
	p.description = description
	p.price = price
	p.updatedAt = biztime.NowUTC()
	return nil
}

// SetThumbnail replaces the catalog thumbnail URL.
func (p *Program) SetThumbnail(url string) {
	if url == "" {
		p.thumbnail = nil
	} else {
		p.thumbnail = &url
	}
	p.updatedAt = biztime.NowUTC()
}

// Publish makes the program visible to buyers.
func (p *Program) Publish() {
	p.isActive = true
	p.updatedAt = biztime.NowUTC()
}

// Unpublish removes the program from the catalog. Existing subscriptions are
// unaffected.
func (p *Program) Unpublish() {
	p.isActive = false
	p.updatedAt = biztime.NowUTC()
}

// PauseSale stops new purchases while keeping the program visible. The reason
// is shown to buyers who attempt checkout; empty means use the default notice.
func (p *Program) PauseSale(reason string) {
	p.onSale = false
	if reason == "" {
		p.saleStopReason = nil
	} else {
		p.saleStopReason = &reason
	}
	p.updatedAt = biztime.NowUTC()
}

// ResumeSale re-opens the program for purchase.
func (p *Program) ResumeSale() {
	p.onSale = true
	p.saleStopReason = nil
	p.updatedAt = biztime.NowUTC()
}

// IsFree reports whether enrollment skips the payment gateway entirely.
func (p *Program) IsFree() bool {
	return p.price == 0
}

// IsPurchasable reports whether a buyer may start checkout right now.
func (p *Program) IsPurchasable() bool {
	return p.isActive && p.onSale
}

// IsOwnedBy reports whether the given coach authored this program.
func (p *Program) IsOwnedBy(coachID string) bool {
	return p.coachID == coachID
}

func (p *Program) ID() string {
	return p.id
}

func (p *Program) CoachID() string {
	return p.coachID
}

func (p *Program) Title() string {
	return p.title
}

func (p *Program) Description() string {
	return p.description
}

func (p *Program) Price() int64 {
	return p.price
}

func (p *Program) Thumbnail() *string {
	return p.thumbnail
}

func (p *Program) IsActive() bool {
	return p.isActive
}

func (p *Program) OnSale() bool {
	return p.onSale
}

func (p *Program) SaleStopReason() *string {
	return p.saleStopReason
}

func (p *Program) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Program) UpdatedAt() time.Time {
	return p.updatedAt
}

func ReconstructProgram(
	programID, coachID string,
	title, description string,
	price int64,
	thumbnail *string,
	isActive, onSale bool,
	saleStopReason *string,
	createdAt, updatedAt time.Time,
) *Program {
	return &Program{
		id:             programID,
		coachID:        coachID,
		title:          title,
		description:    description,
		price:          price,
		thumbnail:      thumbnail,
		isActive:       isActive,
		onSale:         onSale,
		saleStopReason: saleStopReason,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}
