package program

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coachfit-inc/coachfit/internal/shared/id"
)

func validProgram(t *testing.T) *Program {
	t.Helper()
	p, err := NewProgram("coach-1", "8주 체중 감량 코칭", "매주 식단과 운동 피드백", 49000)
	require.NoError(t, err)
	return p
}

func TestNewProgram(t *testing.T) {
	tests := []struct {
		name    string
		coachID string
		title   string
		price   int64
		errMsg  string
	}{
		{name: "paid program", coachID: "coach-1", title: "PT 코칭", price: 49000},
		{name: "free program", coachID: "coach-1", title: "무료 체험", price: 0},
		{name: "missing coach", coachID: "", title: "PT 코칭", price: 1000, errMsg: "coach ID is required"},
		{name: "blank title", coachID: "coach-1", title: "   ", price: 1000, errMsg: "title is required"},
		{name: "title too long", coachID: "coach-1", title: strings.Repeat("a", MaxTitleLength+1), price: 1000, errMsg: "title exceeds"},
		{name: "negative price", coachID: "coach-1", title: "PT 코칭", price: -1, errMsg: "price cannot be negative"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := NewProgram(tc.coachID, tc.title, "desc", tc.price)
			if tc.errMsg != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
				return
			}
			require.NoError(t, err)
			assert.True(t, id.IsUUID(p.ID()))
			assert.Equal(t, tc.coachID, p.CoachID())
			assert.False(t, p.IsActive(), "new program starts unpublished")
			assert.True(t, p.OnSale())
			assert.Nil(t, p.SaleStopReason())
		})
	}
}

func TestProgram_IsFree(t *testing.T) {
	free, err := NewProgram("coach-1", "무료 체험", "", 0)
	require.NoError(t, err)
	assert.True(t, free.IsFree())

	paid := validProgram(t)
	assert.False(t, paid.IsFree())
}

func TestProgram_PublishLifecycle(t *testing.T) {
	p := validProgram(t)
	assert.False(t, p.IsPurchasable(), "unpublished program is not purchasable")

	p.Publish()
	assert.True(t, p.IsActive())
	assert.True(t, p.IsPurchasable())

	p.Unpublish()
	assert.False(t, p.IsActive())
	assert.False(t, p.IsPurchasable())
}

func TestProgram_PauseAndResumeSale(t *testing.T) {
	p := validProgram(t)
	p.Publish()

	p.PauseSale("리뉴얼 준비 중입니다.")
	assert.False(t, p.OnSale())
	assert.False(t, p.IsPurchasable())
	require.NotNil(t, p.SaleStopReason())
	assert.Equal(t, "리뉴얼 준비 중입니다.", *p.SaleStopReason())

	p.ResumeSale()
	assert.True(t, p.OnSale())
	assert.True(t, p.IsPurchasable())
	assert.Nil(t, p.SaleStopReason())
}

func TestProgram_PauseSaleWithoutReason(t *testing.T) {
	p := validProgram(t)
	p.Publish()

	p.PauseSale("")
	assert.False(t, p.OnSale())
	assert.Nil(t, p.SaleStopReason())
}

func TestProgram_UpdateDetails(t *testing.T) {
	p := validProgram(t)

	err := p.UpdateDetails("12주 코칭", "업데이트된 설명", 99000)
	require.NoError(t, err)
	assert.Equal(t, "12주 코칭", p.Title())
	assert.Equal(t, int64(99000), p.Price())

	err = p.UpdateDetails("", "desc", 1000)
	require.Error(t, err)

	err = p.UpdateDetails("ok", "desc", -5)
	require.Error(t, err)
}

func TestProgram_SetThumbnail(t *testing.T) {
	p := validProgram(t)

	p.SetThumbnail("https://cdn.example.com/t.png")
	require.NotNil(t, p.Thumbnail())
	assert.Equal(t, "https://cdn.example.com/t.png", *p.Thumbnail())

	p.SetThumbnail("")
	assert.Nil(t, p.Thumbnail())
}

func TestProgram_IsOwnedBy(t *testing.T) {
	p := validProgram(t)
	assert.True(t, p.IsOwnedBy("coach-1"))
	assert.False(t, p.IsOwnedBy("coach-2"))
}
