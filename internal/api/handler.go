package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/insightdelivered/finance-insights/internal/categorize"
	"github.com/insightdelivered/finance-insights/internal/config"
	"github.com/insightdelivered/finance-insights/internal/insights"
	"github.com/insightdelivered/finance-insights/internal/loader"
	"github.com/insightdelivered/finance-insights/internal/models"
	"github.com/insightdelivered/finance-insights/internal/writer"
)

const version = "1.0.0"

// AnalyzeResponse is the JSON result of a full pipeline run.
type AnalyzeResponse struct {
	Success      bool                      `json:"success"`
	Error        string                    `json:"error,omitempty"`
	Mode         categorize.Mode           `json:"mode,omitempty"`
	Rule         string                    `json:"rule,omitempty"`
	DroppedRows  int                       `json:"droppedRows"`
	Count        int                       `json:"count"`
	Transactions models.Ledger             `json:"transactions"`
	Monthly      insights.MonthlySummary   `json:"monthly"`
	TopExpenses  models.Ledger             `json:"topExpenses"`
	Recurring    []insights.RecurringGroup `json:"recurring"`
	Anomalies    []insights.Anomaly        `json:"anomalies"`
	CSV          string                    `json:"csv,omitempty"`
}

// Server owns the HTTP surface of the pipeline. The categorizer is
// built once at startup; rule table and model are read-only afterward
// and safe for concurrent requests.
type Server struct {
	cfg config.Config
	cat *categorize.Categorizer
	log *slog.Logger
}

// NewServer builds a server from configuration. A missing classifier
// artifact is normal: the server logs it and runs in rule mode.
func NewServer(cfg config.Config, log *slog.Logger) *Server {
	model, err := categorize.LoadClassifier(cfg.ModelPath)
	if err != nil {
		log.Info("classifier unavailable, using rule-based categorization", "path", cfg.ModelPath)
		model = nil
	}
	return &Server{
		cfg: cfg,
		cat: categorize.New(cfg.Rules(), model),
		log: log,
	}
}

// Mode reports the active categorization strategy.
func (s *Server) Mode() categorize.Mode {
	return s.cat.Mode()
}

// App assembles the Fiber application with all routes registered.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:   "finance-insights",
		BodyLimit: 32 << 20,
	})
	app.Use(recover.New())

	app.Get("/api/health", s.handleHealth)
	app.Post("/api/analyze", s.handleAnalyze)
	return app
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": version,
		"mode":    string(s.cat.Mode()),
	})
}

func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		return writeError(c, fiber.StatusBadRequest, "no file uploaded; use form field 'file'")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".csv" && ext != ".pdf" {
		return writeError(c, fiber.StatusBadRequest,
			fmt.Sprintf("unsupported file type %q; upload a .csv or .pdf statement", ext))
	}

	tmp, err := os.CreateTemp("", "statement-*"+ext)
	if err != nil {
		return writeError(c, fiber.StatusInternalServerError, "failed to stage upload")
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	if err := c.SaveFile(file, tmpPath); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "failed to save upload")
	}

	stmt, err := loader.Load(tmpPath)
	if err != nil {
		return writeError(c, fiber.StatusUnprocessableEntity, err.Error())
	}
	if len(stmt.Ledger) == 0 {
		return writeError(c, fiber.StatusUnprocessableEntity,
			"no transactions found; the file may be missing Description/Amount columns or use an unrecognized layout")
	}

	s.log.Info("statement loaded",
		"file", file.Filename, "rows", len(stmt.Ledger),
		"rule", stmt.Rule, "dropped", stmt.DroppedRows)

	ledger := s.cat.Categorize(stmt.Ledger)

	var csvBuf bytes.Buffer
	if err := writer.WriteLedger(&csvBuf, ledger); err != nil {
		return writeError(c, fiber.StatusInternalServerError, "CSV generation failed")
	}

	return c.JSON(AnalyzeResponse{
		Success:      true,
		Mode:         s.cat.Mode(),
		Rule:         stmt.Rule,
		DroppedRows:  stmt.DroppedRows,
		Count:        len(ledger),
		Transactions: ledger,
		Monthly:      insights.Monthly(ledger),
		TopExpenses:  orEmpty(insights.TopExpenses(ledger, s.cfg.Thresholds.TopExpenses)),
		Recurring:    insights.Recurring(ledger, s.cfg.Thresholds.MinOccurrences),
		Anomalies:    insights.Anomalies(ledger, s.cfg.Thresholds.AnomalyZScore),
		CSV:          csvBuf.String(),
	})
}

// orEmpty keeps JSON arrays as [] instead of null.
func orEmpty(l models.Ledger) models.Ledger {
	if l == nil {
		return models.Ledger{}
	}
	return l
}

func writeError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(AnalyzeResponse{
		Success:      false,
		Error:        msg,
		Transactions: models.Ledger{},
	})
}
