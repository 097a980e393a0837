package api_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/suryalaha/EcoTrack-app-manage/internal/api"
	"github.com/suryalaha/EcoTrack-app-manage/internal/engine"
	errorvalues "github.com/suryalaha/EcoTrack-app-manage/internal/error_values"
	"github.com/suryalaha/EcoTrack-app-manage/internal/service"
	"github.com/suryalaha/EcoTrack-app-manage/pkg/entity"
)

type decimalMatcher struct{ want decimal.Decimal }

func (m decimalMatcher) Matches(x any) bool {
	d, ok := x.(decimal.Decimal)
	return ok && d.Equal(m.want)
}

func (m decimalMatcher) String() string { return "is decimal " + m.want.String() }

func decimalEq(v int64) gomock.Matcher { return decimalMatcher{want: decimal.NewFromInt(v)} }

func TestLogWasteHandler(t *testing.T) {
	env := newTestEnv(t)
	t.Run("fined", func(t *testing.T) {
		acc, token := env.signedIn(t, entity.RoleHousehold)
		env.wasteLogs.EXPECT().LogWaste(gomock.Any(), acc.ID, entity.WasteMixed).Return(&engine.WasteLogResult{
			Accepted:    true,
			FineApplied: true,
			Balance:     decimal.NewFromInt(175),
			Notice:      engine.MixedWasteNotice,
		}, nil)
		rec := env.do(t, http.MethodPost, "/api/v1/waste-logs", token, api.LogWasteRequest{WasteType: entity.WasteMixed})
		require.Equal(t, http.StatusCreated, rec.Code)
		resp := decode[api.LogWasteResponse](t, rec)
		assert.True(t, resp.FineApplied)
		assert.True(t, resp.Balance.Equal(decimal.NewFromInt(175)))
		assert.Equal(t, 0, resp.ConsecutiveMixed)
	})
	t.Run("already logged", func(t *testing.T) {
		acc, token := env.signedIn(t, entity.RoleHousehold)
		env.wasteLogs.EXPECT().LogWaste(gomock.Any(), acc.ID, entity.WasteWet).Return(&engine.WasteLogResult{
			Accepted:         false,
			ConsecutiveMixed: 2,
			Balance:          decimal.NewFromInt(75),
		}, nil)
		rec := env.do(t, http.MethodPost, "/api/v1/waste-logs", token, api.LogWasteRequest{WasteType: entity.WasteWet})
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[api.LogWasteResponse](t, rec)
		assert.False(t, resp.Accepted)
		assert.Equal(t, 2, resp.ConsecutiveMixed)
	})
	t.Run("list paginated", func(t *testing.T) {
		acc, token := env.signedIn(t, entity.RoleHousehold)
		env.wasteLogs.EXPECT().ListLogs(gomock.Any(), acc.ID, service.PaginationOpts{Limit: 5, Offset: 10}).Return([]entity.WasteLog{}, nil)
		rec := env.do(t, http.MethodGet, "/api/v1/waste-logs?page=3&limit=5", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decode[api.GetWasteLogsResponse](t, rec)
		assert.Equal(t, 3, resp.Page)
	})
}

func TestBookingHandlers(t *testing.T) {
	env := newTestEnv(t)
	t.Run("created", func(t *testing.T) {
		acc, token := env.signedIn(t, entity.RoleHousehold)
		fee := decimal.NewFromInt(500)
		attendees := 250
		env.bookings.EXPECT().Book(gomock.Any(), acc.ID, gomock.Any()).DoAndReturn(
			func(_ any, _ uuid.UUID, req *service.BookingRequest) (*entity.Booking, error) {
				assert.Equal(t, time.Date(2030, time.January, 15, 0, 0, 0, 0, time.UTC), req.PickupDate)
				return &entity.Booking{ID: uuid.New(), BookingFee: &fee, AttendeeCount: req.AttendeeCount}, nil
			})
		rec := env.do(t, http.MethodPost, "/api/v1/bookings", token, api.CreateBookingRequest{
			PickupDate:    "2030-01-15",
			TimeSlot:      entity.SlotMorning,
			WasteType:     entity.BookingEventWaste,
			AttendeeCount: &attendees,
		})
		require.Equal(t, http.StatusCreated, rec.Code)
		assert.True(t, decode[entity.Booking](t, rec).BookingFee.Equal(fee))
	})
	t.Run("bad date", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleHousehold)
		rec := env.do(t, http.MethodPost, "/api/v1/bookings", token, api.CreateBookingRequest{PickupDate: "15/01/2030"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("adjust fee on priced booking", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		id := uuid.New()
		env.bookings.EXPECT().AdjustFee(gomock.Any(), id, gomock.Any()).Return(nil, errorvalues.ErrFeeNotAdjustable)
		rec := env.do(t, http.MethodPut, "/api/v1/admin/bookings/"+id.String()+"/fee", token, api.AdjustFeeRequest{Fee: decimal.NewFromInt(2000)})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
	t.Run("complete with bad id", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		rec := env.do(t, http.MethodPost, "/api/v1/admin/bookings/not-a-uuid/complete", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestPaymentHandlers(t *testing.T) {
	env := newTestEnv(t)
	t.Run("submit", func(t *testing.T) {
		acc, token := env.signedIn(t, entity.RoleHousehold)
		env.payments.EXPECT().Submit(gomock.Any(), acc.ID, decimalEq(75), "receipt.png").Return(&entity.Payment{
			ID:     uuid.New(),
			Amount: decimal.NewFromInt(75),
			Status: entity.PaymentPending,
		}, nil)
		rec := env.do(t, http.MethodPost, "/api/v1/payments", token, api.SubmitPaymentRequest{
			Amount:     decimal.NewFromInt(75),
			Screenshot: "receipt.png",
		})
		require.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, entity.PaymentPending, decode[entity.Payment](t, rec).Status)
	})
	t.Run("review settled", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		id := uuid.New()
		env.payments.EXPECT().Review(gomock.Any(), id, false, "").Return(nil, errorvalues.ErrPaymentSettled)
		rec := env.do(t, http.MethodPost, "/api/v1/admin/payments/"+id.String()+"/review", token, api.ReviewPaymentRequest{})
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
	t.Run("pending list by default", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		env.payments.EXPECT().ListByStatus(gomock.Any(), entity.PaymentPending).Return([]entity.Payment{}, nil)
		rec := env.do(t, http.MethodGet, "/api/v1/admin/payments", token, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestAdminAccountHandlers(t *testing.T) {
	env := newTestEnv(t)
	id := uuid.New()
	t.Run("list by role", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		env.accounts.EXPECT().List(gomock.Any(), entity.RoleDriver, service.PaginationOpts{Limit: 10, Offset: 0}).Return([]*entity.Account{}, nil)
		rec := env.do(t, http.MethodGet, "/api/v1/admin/accounts?role=driver&limit=500", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 10, decode[api.GetAccountsResponse](t, rec).Limit)
	})
	t.Run("warn", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		env.accounts.EXPECT().Warn(gomock.Any(), id, "Segregate your waste").Return(nil)
		rec := env.do(t, http.MethodPost, "/api/v1/admin/accounts/"+id.String()+"/warning", token, api.WarnRequest{Message: "Segregate your waste"})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
	t.Run("attendance for household", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		env.accounts.EXPECT().SetAttendance(gomock.Any(), id, entity.AttendanceOnLeave).Return(errorvalues.ErrWrongRole)
		rec := env.do(t, http.MethodPut, "/api/v1/admin/accounts/"+id.String()+"/attendance", token, api.AttendanceRequest{Status: entity.AttendanceOnLeave})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
	t.Run("delete missing", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		env.accounts.EXPECT().Delete(gomock.Any(), id).Return(errorvalues.ErrUserNotFound)
		rec := env.do(t, http.MethodDelete, "/api/v1/admin/accounts/"+id.String(), token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("send message", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleAdmin)
		env.messages.EXPECT().Notify(gomock.Any(), id, "Pickup moved to 8am").Return(&entity.Message{ID: uuid.New(), RecipientID: id}, nil)
		rec := env.do(t, http.MethodPost, "/api/v1/admin/accounts/"+id.String()+"/messages", token, api.SendMessageRequest{Text: "Pickup moved to 8am"})
		assert.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestTrackingAndChatHandlers(t *testing.T) {
	env := newTestEnv(t)
	t.Run("eta", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleHousehold)
		env.tracking.EXPECT().ETA(gomock.Any(), entity.Location{Lat: 22.57, Lng: 88.36}).Return("9 min")
		rec := env.do(t, http.MethodGet, "/api/v1/tracking/eta?lat=22.57&lng=88.36", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "9 min", decode[api.ETAResponse](t, rec).ETA)
	})
	t.Run("eta without coordinates", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleHousehold)
		rec := env.do(t, http.MethodGet, "/api/v1/tracking/eta", token, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
	t.Run("eta with coordinates off the globe", func(t *testing.T) {
		for _, query := range []string{"lat=NaN&lng=88.36", "lat=22.57&lng=Inf", "lat=95&lng=88.36", "lat=22.57&lng=-181"} {
			_, token := env.signedIn(t, entity.RoleHousehold)
			rec := env.do(t, http.MethodGet, "/api/v1/tracking/eta?"+query, token, nil)
			assert.Equal(t, http.StatusBadRequest, rec.Code, query)
		}
	})
	t.Run("employee reports location", func(t *testing.T) {
		acc, token := env.signedIn(t, entity.RoleEmployee)
		env.tracking.EXPECT().UpdateLocation(gomock.Any(), acc.ID, entity.Location{Lat: 22.6, Lng: 88.4}).Return(nil)
		rec := env.do(t, http.MethodPost, "/api/v1/staff/location", token, entity.Location{Lat: 22.6, Lng: 88.4})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
	t.Run("household cannot report location", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleHousehold)
		rec := env.do(t, http.MethodPost, "/api/v1/staff/location", token, entity.Location{Lat: 22.6, Lng: 88.4})
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
	t.Run("driver reports location", func(t *testing.T) {
		acc, token := env.signedIn(t, entity.RoleDriver)
		env.tracking.EXPECT().UpdateLocation(gomock.Any(), acc.ID, entity.Location{Lat: 22.5, Lng: 88.3}).Return(nil)
		rec := env.do(t, http.MethodPost, "/api/v1/staff/location", token, entity.Location{Lat: 22.5, Lng: 88.3})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
	t.Run("no active driver", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleHousehold)
		env.tracking.EXPECT().ActiveDriver(gomock.Any()).Return(nil, errorvalues.ErrNoActiveDriver)
		rec := env.do(t, http.MethodGet, "/api/v1/tracking/driver", token, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
	t.Run("chat", func(t *testing.T) {
		_, token := env.signedIn(t, entity.RoleHousehold)
		env.chat.EXPECT().Chat(gomock.Any(), "Is pizza box recyclable?").Return("Only if it is clean.")
		rec := env.do(t, http.MethodPost, "/api/v1/chat", token, api.ChatRequest{Prompt: "Is pizza box recyclable?"})
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Only if it is clean.", decode[api.ChatResponse](t, rec).Reply)
	})
}
