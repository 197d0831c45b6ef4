package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "coinfolio/internal/errors"
	"coinfolio/internal/models"
	"coinfolio/internal/pagination"
	"coinfolio/internal/services"
)

func setupReferralRouter(svc *mockReferralService, audit *mockAuditService) *gin.Engine {
	h := NewReferralHandler(svc, audit)
	r := gin.New()
	g := r.Group("/referrals", injectUserID(testUserID))
	g.GET("", h.ListReferrals)
	g.POST("/redeem", h.Redeem)
	return r
}

func TestReferralHandler_ListReferrals(t *testing.T) {
	t.Run("returns 200 with page", func(t *testing.T) {
		var gotPage pagination.PageRequest
		svc := &mockReferralService{
			listReferralsFn: func(_ string, page pagination.PageRequest) (*pagination.PageResponse[services.ReferralEntry], error) {
				gotPage = page
				resp := pagination.NewPageResponse([]services.ReferralEntry{{Username: "bob"}}, 2, 5, 6)
				return &resp, nil
			},
		}
		r := setupReferralRouter(svc, &mockAuditService{})

		rec := doRequest(r, "GET", "/referrals?page=2&page_size=5", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if gotPage.Page != 2 || gotPage.PageSize != 5 {
			t.Errorf("unexpected page request %+v", gotPage)
		}
		result := parseJSON(t, rec)
		if result["total_pages"] != float64(2) {
			t.Errorf("expected 2 total pages, got %v", result["total_pages"])
		}
	})

	t.Run("returns 400 on oversized page", func(t *testing.T) {
		r := setupReferralRouter(&mockReferralService{}, &mockAuditService{})

		rec := doRequest(r, "GET", "/referrals?page_size=500", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestReferralHandler_Redeem(t *testing.T) {
	t.Run("returns 200 and audits redeemed points", func(t *testing.T) {
		svc := &mockReferralService{
			tradeInPointsFn: func(context.Context, string) (*services.TradeInResult, error) {
				return &services.TradeInResult{
					Redeemed:  200,
					Portfolio: &models.Portfolio{CashBalance: decimal.NewFromInt(10200)},
				}, nil
			},
		}
		audit := &mockAuditService{}
		r := setupReferralRouter(svc, audit)

		rec := doRequest(r, "POST", "/referrals/redeem", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if parseJSON(t, rec)["redeemed"] != float64(200) {
			t.Error("expected 200 points redeemed")
		}
		if len(audit.entries) != 1 || audit.entries[0].action != services.AuditActionRedeemPoints {
			t.Errorf("expected redeem audit entry, got %+v", audit.entries)
		}
	})

	t.Run("skips audit when nothing redeemed", func(t *testing.T) {
		audit := &mockAuditService{}
		r := setupReferralRouter(&mockReferralService{}, audit)

		rec := doRequest(r, "POST", "/referrals/redeem", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if len(audit.entries) != 0 {
			t.Errorf("expected no audit entries, got %+v", audit.entries)
		}
	})

	t.Run("returns 404 when portfolio missing", func(t *testing.T) {
		svc := &mockReferralService{
			tradeInPointsFn: func(context.Context, string) (*services.TradeInResult, error) {
				return nil, apperrors.ErrPortfolioNotFound
			},
		}
		r := setupReferralRouter(svc, &mockAuditService{})

		rec := doRequest(r, "POST", "/referrals/redeem", "")

		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})
}
