package endpoints

import (
	"errors"

	"autoscan/core/barcode"
	"autoscan/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ScanRequest is the body of a scan event posted by a scanner host.
// Location is omitted for a removal; a present but empty location is rejected.
type ScanRequest struct {
	Device   string  `json:"device" example:"T10123456789"`
	Location *string `json:"location,omitempty" example:"PN12340V5"`
}

// ScanResponse reports the outcome of a scan with the processor exit code.
type ScanResponse struct {
	NetworkID string `json:"network_id,omitempty"`
	Outcome   string `json:"outcome,omitempty"`
	Action    string `json:"action,omitempty"`
	Reason    string `json:"reason,omitempty"`
	ExitCode  int    `json:"exit_code"`
	Error     string `json:"error,omitempty"`
}

// Handler handles HTTP requests for endpoint devices.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the endpoint routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/scans", h.HandleScan)
	app.Get("/decode", h.HandleDecode)

	group := app.Group("/endpoints")
	group.Post("/export", h.HandleExport)
	group.Get("/:barcode", h.HandleGetEndpoint)
}

// HandleScan processes one scan event, exactly like a processor invocation.
// @Summary Process Scan
// @Description Runs one scan event through the processor. Omit location to remove the device from its location. The response carries the processor exit code.
// @Tags endpoints
// @Accept json
// @Produce json
// @Param scan body ScanRequest true "Scan event"
// @Success 200 {object} ScanResponse "Inserted, updated or cleared (exit 0)"
// @Failure 400 {object} ScanResponse "Invalid request body"
// @Failure 404 {object} ScanResponse "Removal of an unknown device (exit 10)"
// @Failure 409 {object} ScanResponse "Removal blocked by annotation (exit 3)"
// @Failure 422 {object} ScanResponse "Unrecognized barcode (exit 4)"
// @Failure 500 {object} ScanResponse "Commit failure (exit 2)"
// @Failure 503 {object} ScanResponse "Store unavailable (exit 1)"
// @Security ApiKeyAuth
// @Router /scans [post]
func (h *Handler) HandleScan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req ScanRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ScanResponse{
			ExitCode: ExitUnrecognized,
			Error:    "invalid request body",
		})
	}

	result, err := h.service.WithLogger(l).Process(c.UserContext(), req.Device, req.Location)
	code := ExitCode(result, err)

	if err != nil {
		return c.Status(statusForExitCode(code)).JSON(ScanResponse{
			ExitCode: code,
			Error:    err.Error(),
		})
	}

	return c.Status(statusForExitCode(code)).JSON(ScanResponse{
		NetworkID: result.Action.NetworkID,
		Outcome:   string(result.Outcome),
		Action:    string(result.Action.Type),
		Reason:    result.Action.Reason,
		ExitCode:  code,
	})
}

// HandleDecode returns the decoded form of the given barcodes without touching the store.
// @Summary Decode Barcodes
// @Description Decodes a device barcode and, when the location parameter is present, a location barcode. Nothing is written.
// @Tags endpoints
// @Produce json
// @Param device query string true "Device barcode"
// @Param location query string false "Location barcode; an empty value is rejected"
// @Success 200 {object} reconcile.Scan "Decoded scan"
// @Failure 422 {object} map[string]string "Unrecognized barcode"
// @Security ApiKeyAuth
// @Router /decode [get]
func (h *Handler) HandleDecode(c *fiber.Ctx) error {
	var location *string
	if c.Context().QueryArgs().Has("location") {
		loc := c.Query("location")
		location = &loc
	}

	scan, err := h.service.Decode(c.Query("device"), location)
	if err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(scan)
}

// HandleGetEndpoint returns the stored record of a device barcode.
// @Summary Get Device Record
// @Description Returns the stored record of a device, including its user and comment annotations.
// @Tags endpoints
// @Produce json
// @Param barcode path string true "Device barcode"
// @Success 200 {object} reconcile.Record "Stored record"
// @Failure 404 {object} map[string]string "Device not in inventory"
// @Failure 422 {object} map[string]string "Invalid device barcode"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Security ApiKeyAuth
// @Router /endpoints/{barcode} [get]
func (h *Handler) HandleGetEndpoint(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	record, err := h.service.Lookup(c.UserContext(), c.Params("barcode"))
	if errors.Is(err, barcode.ErrEmptyDevice) || errors.Is(err, barcode.ErrInvalidDevice) || errors.Is(err, barcode.ErrUnknownProduct) {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if err != nil {
		l.Error("Endpoint lookup failed", zap.Error(err))
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "endpoint not found",
		})
	}
	return c.JSON(record)
}

// HandleExport uploads a snapshot of all device locations to object storage.
// @Summary Export Location Snapshot
// @Description Uploads the current location of every device as one JSON object to the export bucket.
// @Tags endpoints
// @Produce json
// @Success 201 {object} ExportReport "Uploaded snapshot"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Security ApiKeyAuth
// @Router /endpoints/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.Export(c.UserContext())
	if err != nil {
		l.Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(report)
}

func statusForExitCode(code int) int {
	switch code {
	case ExitOK:
		return fiber.StatusOK
	case ExitBlocked:
		return fiber.StatusConflict
	case ExitNotFound:
		return fiber.StatusNotFound
	case ExitUnrecognized:
		return fiber.StatusUnprocessableEntity
	case ExitCommit:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusServiceUnavailable
	}
}
