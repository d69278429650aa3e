package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fms-app/config"
	"fms-app/events"
	"fms-app/fms/booking"
	"fms-app/fms/cargo"
	"fms-app/middleware"
	"fms-app/notify"
	"fms-app/repositories"
	"fms-app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool              `json:"success"`
	Message string            `json:"message"`
	Data    json.RawMessage   `json:"data"`
	Fields  []string          `json:"fields"`
	Errors  map[string]string `json:"errors"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	config.MAIN_ROUTES = "/api/v1"

	svc := services.NewBookingService(repositories.NewMemoryBookingRepository(), cargo.DefaultCalculator, events.NopPublisher{}, notify.NopMailer{})
	svc.Now = func() time.Time { return time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC) }

	app := fiber.New()
	middleware.Setup(app, 5*time.Second)
	Setup(app, svc)
	return app
}

func call(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, envelope) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "42")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	if resp.Header.Get("Content-Type") == fiber.MIMEApplicationJSON {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	}
	return resp, env
}

func decode[T any](t *testing.T, raw json.RawMessage) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out))
	return out
}

func newBookingBody() map[string]interface{} {
	return map[string]interface{}{
		"mode":           "SEA",
		"booking_date":   "2024-06-03",
		"shipper":        map[string]string{"name": "Hanil Trading"},
		"consignee":      map[string]string{"name": "Euro Foods"},
		"carrier":        "HMM",
		"pol":            "KRPUS",
		"pod":            "NLRTM",
		"etd":            "2024-06-20",
		"commodity":      "Frozen food",
		"gross_weight":   12000,
		"container_type": "40RF",
		"container_qty":  2,
	}
}

func TestBookingLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)

	resp, env := call(t, app, http.MethodPost, "/api/v1/bookings", newBookingBody())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[booking.Booking](t, env.Data)
	assert.Equal(t, "SB-2024-0001", created.BookingNo)
	assert.Equal(t, booking.StatusDraft, created.Status)
	id := created.ID.String()

	resp, _ = call(t, app, http.MethodPost, "/api/v1/bookings/"+id+"/confirm", nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, env = call(t, app, http.MethodPost, "/api/v1/bookings/"+id+"/submit", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, booking.StatusRequested, decode[booking.Booking](t, env.Data).Status)

	resp, env = call(t, app, http.MethodPost, "/api/v1/bookings/"+id+"/confirm", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "BC-2024-0001", decode[booking.Booking](t, env.Data).BCNo)

	resp, env = call(t, app, http.MethodPost, "/api/v1/bookings/"+id+"/send-sr", map[string]string{"cut_off_date": "2024-06-18"})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"shipping_date", "cy_location", "cut_off_time"}, env.Fields)

	resp, _ = call(t, app, http.MethodPost, "/api/v1/bookings/"+id+"/send-sr", map[string]string{"cut_off_time": "5 in the evening"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, env = call(t, app, http.MethodGet, "/api/v1/bookings/"+id+"/shipping-request", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	form := decode[booking.ShippingRequest](t, env.Data)
	assert.Equal(t, "2024-06-20", form.ShippingDate)
	assert.Equal(t, "17:00", form.CutOffTime)

	form.CutOffDate = "2024-06-18"
	form.CYLocation = "PNC"
	sr := form
	resp, env = call(t, app, http.MethodPost, "/api/v1/bookings/"+id+"/send-sr", sr)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "SR-2024-0001", decode[booking.Booking](t, env.Data).SRNo)

	resp, _ = call(t, app, http.MethodPost, "/api/v1/bookings/"+id+"/send-sr", sr)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp, env = call(t, app, http.MethodGet, "/api/v1/bookings/"+id+"/timeline", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]booking.TimelineEvent](t, env.Data), 4)

	resp, _ = call(t, app, http.MethodGet, "/api/v1/bookings/"+id+"/documents/bc", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))

	resp, _ = call(t, app, http.MethodDelete, "/api/v1/bookings?ids="+id, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestGetBookingDetail(t *testing.T) {
	app := newTestApp(t)

	_, env := call(t, app, http.MethodPost, "/api/v1/bookings", newBookingBody())
	id := decode[booking.Booking](t, env.Data).ID.String()

	resp, env := call(t, app, http.MethodGet, "/api/v1/bookings/"+id, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	detail := decode[struct {
		Status         booking.StatusMeta `json:"status"`
		AllowedActions []booking.Action   `json:"allowed_actions"`
	}](t, env.Data)
	assert.Equal(t, "작성중", detail.Status.Label)
	assert.Equal(t, []booking.Action{booking.ActionEdit, booking.ActionSubmit, booking.ActionCancel}, detail.AllowedActions)

	resp, _ = call(t, app, http.MethodGet, "/api/v1/bookings/123", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/v1/bookings/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListBookingsOverHTTP(t *testing.T) {
	app := newTestApp(t)

	for _, pol := range []string{"KRPUS", "KRINC", "CNSHA"} {
		body := newBookingBody()
		body["pol"] = pol
		resp, _ := call(t, app, http.MethodPost, "/api/v1/bookings", body)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp, env := call(t, app, http.MethodGet, "/api/v1/bookings?sort=pol&direction=desc&size=2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	page := decode[struct {
		Items []booking.Booking `json:"items"`
		Total int               `json:"total"`
	}](t, env.Data)
	assert.Equal(t, 3, page.Total)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "KRPUS", page.Items[0].POL)
	assert.Equal(t, "KRINC", page.Items[1].POL)

	_, env = call(t, app, http.MethodGet, "/api/v1/bookings?pol=kr&start_date=2024-06-01&end_date=2024-06-30", nil)
	assert.Equal(t, 2, decode[struct {
		Total int `json:"total"`
	}](t, env.Data).Total)

	resp, env = call(t, app, http.MethodGet, "/api/v1/bookings?page=922337203685477580", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[struct {
		Items []booking.Booking `json:"items"`
	}](t, env.Data).Items)

	resp, _ = call(t, app, http.MethodGet, "/api/v1/bookings/export", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "bookings.xlsx")
}

func TestBatchOverHTTP(t *testing.T) {
	app := newTestApp(t)

	body := map[string]interface{}{
		"mode":     "AIR",
		"schedule": map[string]string{"carrier": "KE", "vessel": "KE081"},
		"rows": []map[string]interface{}{
			{"shipper_name": "Hanil", "consignee_name": "Pacific", "pieces": 3, "length": 50, "width": 40, "height": 30, "gross_weight": 20},
			{"shipper_name": "Daon", "consignee_name": "Pacific"},
		},
	}
	resp, env := call(t, app, http.MethodPost, "/api/v1/bookings/batch", body)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	res := decode[services.BatchResult](t, env.Data)
	require.Len(t, res.Created, 1)
	assert.Equal(t, "AB-2024-0001", res.Created[0].BookingNo)
	assert.Equal(t, 3, res.Created[0].ContainerQty)
	assert.Len(t, res.Skipped, 1)

	body["schedule"] = map[string]string{"vessel": "KE081"}
	resp, env = call(t, app, http.MethodPost, "/api/v1/bookings/batch", body)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, []string{"carrier"}, env.Fields)

	resp, _ = call(t, app, http.MethodPost, "/api/v1/bookings/batch", map[string]interface{}{
		"mode":     "RAIL",
		"schedule": map[string]string{"carrier": "KE", "vessel": "KE081"},
		"rows":     []map[string]interface{}{{"shipper_name": "Hanil", "consignee_name": "Pacific", "pieces": 1}},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = call(t, app, http.MethodPost, "/api/v1/bookings/batch", map[string]interface{}{
		"schedule": map[string]string{"carrier": "KE", "vessel": "KE081"},
		"rows":     []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCargoRecomputeAndStatuses(t *testing.T) {
	app := newTestApp(t)

	resp, env := call(t, app, http.MethodPost, "/api/v1/cargo/recompute", map[string]interface{}{
		"mode":  "AIR",
		"lines": []map[string]interface{}{{"pieces": 1, "length": 100, "width": 100, "height": 100, "gross_weight": 80}},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[struct {
		Lines  []cargo.Line `json:"lines"`
		Totals cargo.Totals `json:"totals"`
	}](t, env.Data)
	assert.Equal(t, 167.0, out.Lines[0].ChargeableWeight)
	assert.Equal(t, 1.0, out.Totals.Volume)

	resp, env = call(t, app, http.MethodGet, "/api/v1/statuses", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Len(t, decode[[]booking.StatusMeta](t, env.Data), 5)

	resp, _ = call(t, app, http.MethodPost, "/api/v1/cargo/recompute", map[string]interface{}{"mode": "TRUCK"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestInvalidActorHeader(t *testing.T) {
	app := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings", nil)
	req.Header.Set("X-User-ID", "someone")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
