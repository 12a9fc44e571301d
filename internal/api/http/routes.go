package httpapi

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/i474232898/outfit-recommender/internal/outfit"
	"github.com/i474232898/outfit-recommender/internal/store"
)

const (
	serviceName = "outfit-recommender"

	// heatmapWindow is how many recent recommendations feed the heatmap.
	heatmapWindow = 200
	maxListLimit  = 500
)

var validate = validator.New()

// Recommender runs the weather + outfit workflow for a city.
type Recommender interface {
	GetWeatherAndRecommend(ctx context.Context, city string) outfit.Result
}

// NewApp creates the Fiber app with the centralized error handler and global middleware.
func NewApp(cfg fiber.Config) *fiber.App {
	cfg.AppName = serviceName
	cfg.DisableStartupMessage = true
	cfg.JSONEncoder = json.Marshal
	cfg.JSONDecoder = json.Unmarshal
	cfg.ErrorHandler = func(c *fiber.Ctx, err error) error {
		// Centralized error response
		code := fiber.StatusInternalServerError
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}
		return c.Status(code).JSON(fiber.Map{
			"error":   true,
			"message": err.Error(),
		})
	}

	app := fiber.New(cfg)
	app.Use(logger.New())
	app.Use(recover.New())
	return app
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, rec Recommender, st *store.Store, historyLimit int) {
	h := &handlers{rec: rec, store: st, historyLimit: historyLimit}

	app.Get("/health", h.health)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	api.Post("/recommend", h.recommendJSON)
	api.Get("/v1/recommend", h.recommendQuery)
	api.Get("/history", h.history)
	api.Get("/db-stats", h.dbStats)
	api.Get("/visualization/heatmap", h.heatmap)

	api.Get("/collections/:name", h.listCollection)
	api.Post("/collections/:name", h.insertDocument)
	api.Put("/collections/:name/:id", h.updateDocument)
	api.Delete("/collections/:name/:id", h.deleteDocument)
}

type handlers struct {
	rec          Recommender
	store        *store.Store
	historyLimit int
}

// fail writes the {success:false,error} envelope used by every /api route.
func fail(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"error":   msg,
	})
}

type recommendRequest struct {
	City string `json:"city" query:"city" validate:"required"`
}

func (h *handlers) recommendJSON(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}
	return h.recommend(c, req)
}

func (h *handlers) recommendQuery(c *fiber.Ctx) error {
	var req recommendRequest
	if err := c.QueryParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return h.recommend(c, req)
}

func (h *handlers) recommend(c *fiber.Ctx, req recommendRequest) error {
	req.City = strings.TrimSpace(req.City)
	if err := validate.Struct(req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Please enter a city name.")
	}

	res := h.rec.GetWeatherAndRecommend(c.UserContext(), req.City)
	if res.Success && res.Weather != nil {
		res.Advice = outfit.Advice(*res.Weather)
	}
	return c.JSON(res)
}

func (h *handlers) history(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", h.historyLimit)
	if limit <= 0 || limit > maxListLimit {
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxListLimit))
	}

	records, err := h.store.RecentRecommendations(c.UserContext(), limit)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"success": true,
		"history": records,
	})
}

func (h *handlers) dbStats(c *fiber.Ctx) error {
	stats, err := h.store.Stats(c.UserContext())
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"success": true,
		"stats":   stats,
	})
}

func (h *handlers) heatmap(c *fiber.Ctx) error {
	records, err := h.store.RecentRecommendations(c.UserContext(), heatmapWindow)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	if len(records) == 0 {
		return fail(c, fiber.StatusNotFound, "No recommendation data found.")
	}

	hm, err := outfit.BuildHeatmap(records)
	if errors.Is(err, outfit.ErrNotEnoughData) {
		return fail(c, fiber.StatusUnprocessableEntity, "Not enough data to generate heatmap.")
	}
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"success":       true,
		"categories":    hm.Categories,
		"weathers":      hm.Weathers,
		"data":          hm.Data,
		"total_records": hm.TotalRecords,
	})
}

func (h *handlers) listCollection(c *fiber.Ctx) error {
	coll, err := store.ParseCollection(c.Params("name"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid collection name.")
	}
	limit := c.QueryInt("limit", store.DefaultListLimit)
	if limit <= 0 || limit > maxListLimit {
		return fail(c, fiber.StatusBadRequest, fmt.Sprintf("limit must be between 1 and %d", maxListLimit))
	}

	docs, err := h.store.List(c.UserContext(), coll, limit)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    docs,
	})
}

var errEmptyRecord = errors.New("empty record")

// readRecord accepts the {"record": {...}} envelope sent by the web front-end and a
// bare document.
func readRecord(c *fiber.Ctx) (store.Document, error) {
	var body store.Document
	if err := c.BodyParser(&body); err != nil {
		return nil, err
	}
	if rec, ok := body["record"]; ok {
		m, ok := rec.(map[string]any)
		if !ok {
			return nil, errEmptyRecord
		}
		body = store.Document(m)
	}
	if len(body) == 0 {
		return nil, errEmptyRecord
	}
	return body, nil
}

func (h *handlers) insertDocument(c *fiber.Ctx) error {
	coll, err := store.ParseCollection(c.Params("name"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid collection name.")
	}
	doc, err := readRecord(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	id, err := h.store.Insert(c.UserContext(), coll, doc)
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
		"message": "Record inserted with ID: " + id,
	})
}

func (h *handlers) updateDocument(c *fiber.Ctx) error {
	coll, err := store.ParseCollection(c.Params("name"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid collection name.")
	}
	fields, err := readRecord(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	changed, err := h.store.Update(c.UserContext(), coll, c.Params("id"), fields)
	if errors.Is(err, store.ErrNotFound) || (err == nil && !changed) {
		return fail(c, fiber.StatusNotFound, "No record found or no changes made")
	}
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Record updated successfully",
	})
}

func (h *handlers) deleteDocument(c *fiber.Ctx) error {
	coll, err := store.ParseCollection(c.Params("name"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid collection name.")
	}

	err = h.store.Delete(c.UserContext(), coll, c.Params("id"))
	if errors.Is(err, store.ErrNotFound) {
		return fail(c, fiber.StatusNotFound, "Record not found")
	}
	if err != nil {
		return fail(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Record deleted successfully",
	})
}

func (h *handlers) health(c *fiber.Ctx) error {
	status, code, storeStatus := "ok", fiber.StatusOK, "ok"
	if err := h.store.Ping(c.UserContext()); err != nil {
		status, code, storeStatus = "degraded", fiber.StatusServiceUnavailable, err.Error()
	}
	return c.Status(code).JSON(fiber.Map{
		"status":  status,
		"service": serviceName,
		"store":   storeStatus,
	})
}
