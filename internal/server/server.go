package server

import (
	"database/sql"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/vborges/futura/internal/backup"
	"github.com/vborges/futura/internal/controller"
	"github.com/vborges/futura/internal/email"
	"github.com/vborges/futura/internal/handler"
	"github.com/vborges/futura/internal/imagegen"
	"github.com/vborges/futura/internal/middleware"
	"github.com/vborges/futura/internal/reminder"
	"github.com/vborges/futura/internal/store"
	ws "github.com/vborges/futura/internal/websocket"
)

type Server struct {
	db   *sql.DB
	hub  *ws.Hub
	ctrl *controller.Controller

	authH     *handler.AuthHandler
	pageH     *handler.PageHandler
	boardH    *handler.BoardHandler
	shareH    *handler.ShareHandler
	transferH *handler.TransferHandler
	reminderH *handler.ReminderHandler
	imageH    *handler.ImageHandler

	rateLimiter       *middleware.RateLimiter
	reminderScheduler *reminder.Scheduler
	backupManager     *backup.Manager
	logger            *slog.Logger
}

func New(db *sql.DB, emailClient *email.Client, imageClient *imagegen.Client, backupCfg backup.Config, logger *slog.Logger) *Server {
	hub := ws.NewHub(logger.With("component", "websocket"))

	records := store.NewRecordStore(db)
	identity := store.NewIdentityStore(records, logger.With("component", "identity"))
	boards := store.NewBoardStore(records, logger.With("component", "boards"))
	reminders := store.NewReminderStore(records, db)

	ctrl := controller.New(identity, boards, logger.With("component", "controller"))

	reminderSched := reminder.NewScheduler(emailClient, identity, boards, reminders, logger.With("component", "reminder"))

	backupMgr := backup.NewManager(backupCfg, db, logger.With("component", "backup"), func(s backup.Status) {
		hub.Broadcast(ws.Message{
			Type:   "backup_status",
			Entity: "backup",
			Action: string(s.State),
			Extra: map[string]any{
				"inProgress": s.InProgress,
				"error":      s.Error,
			},
		})
	})

	return &Server{
		db:                db,
		hub:               hub,
		ctrl:              ctrl,
		authH:             handler.NewAuthHandler(ctrl, logger.With("component", "auth")),
		pageH:             handler.NewPageHandler(ctrl, logger.With("component", "pages")),
		boardH:            handler.NewBoardHandler(ctrl, hub, logger.With("component", "board")),
		shareH:            handler.NewShareHandler(ctrl, logger.With("component", "share")),
		transferH:         handler.NewTransferHandler(ctrl, hub, logger.With("component", "transfer")),
		reminderH:         handler.NewReminderHandler(ctrl, reminders, emailClient, logger.With("component", "reminders")),
		imageH:            handler.NewImageHandler(imageClient, logger.With("component", "images")),
		rateLimiter:       middleware.NewRateLimiter(),
		reminderScheduler: reminderSched,
		backupManager:     backupMgr,
		logger:            logger,
	}
}

// Controller exposes the session controller for startup resolution.
func (s *Server) Controller() *controller.Controller {
	return s.ctrl
}

// RateLimiter returns the rate limiter for cleanup tasks.
func (s *Server) RateLimiter() *middleware.RateLimiter {
	return s.rateLimiter
}

// ReminderScheduler returns the monthly reminder scheduler.
func (s *Server) ReminderScheduler() *reminder.Scheduler {
	return s.reminderScheduler
}

// BackupManager returns the snapshot manager.
func (s *Server) BackupManager() *backup.Manager {
	return s.backupManager
}

func (s *Server) Router() http.Handler {
	outerMux := http.NewServeMux()

	// Public routes (no session required)
	outerMux.HandleFunc("GET /login", s.authH.LoginPage)
	outerMux.HandleFunc("POST /login", s.rateLimitedHandler(s.authH.Login))
	outerMux.HandleFunc("GET /register", s.authH.RegisterPage)
	outerMux.HandleFunc("POST /register", s.rateLimitedHandler(s.authH.Register))
	outerMux.HandleFunc("GET /b/{token}", s.shareH.PublicPage)
	outerMux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))
	outerMux.HandleFunc("GET /health", s.healthHandler)
	outerMux.HandleFunc("GET /ws", ws.HandleWebSocket(s.hub, s.logger.With("component", "websocket")))

	// Gated routes — wrapped with RequireSession middleware
	gatedMux := http.NewServeMux()
	s.registerGatedRoutes(gatedMux)

	sessionMiddleware := middleware.RequireSession(s.ctrl)
	outerMux.Handle("/", sessionMiddleware(gatedMux))

	return middleware.RequestLogger(s.logger.With("component", "http"))(outerMux)
}

func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) rateLimitedHandler(h http.HandlerFunc) http.HandlerFunc {
	keyFunc := func(r *http.Request) string {
		return middleware.RealIP(r)
	}
	rl := middleware.RateLimit(s.rateLimiter, keyFunc, 10, time.Minute)
	return func(w http.ResponseWriter, r *http.Request) {
		rl(http.HandlerFunc(h)).ServeHTTP(w, r)
	}
}

func (s *Server) registerGatedRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /logout", s.authH.Logout)

	// Editor page
	mux.HandleFunc("GET /{$}", s.pageH.Editor)

	// Board API
	mux.HandleFunc("GET /api/board", s.boardH.Get)
	mux.HandleFunc("PUT /api/board/title", s.boardH.Rename)
	mux.HandleFunc("PUT /api/board/theme", s.boardH.SetTheme)

	// Sections
	mux.HandleFunc("POST /api/sections", s.boardH.AddSection)
	mux.HandleFunc("PUT /api/sections/{id}", s.boardH.RenameSection)
	mux.HandleFunc("DELETE /api/sections/{id}", s.boardH.DeleteSection)

	// Items
	mux.HandleFunc("POST /api/sections/{id}/items", s.boardH.AddItem)
	mux.HandleFunc("PUT /api/sections/{id}/items/{item_id}", s.boardH.UpdateItem)
	mux.HandleFunc("DELETE /api/sections/{id}/items/{item_id}", s.boardH.DeleteItem)

	// Themes and starter templates
	mux.HandleFunc("GET /api/themes", s.boardH.Themes)
	mux.HandleFunc("GET /api/presets", s.boardH.Presets)
	mux.HandleFunc("POST /api/presets/{id}", s.boardH.ApplyPreset)

	// Sharing
	mux.HandleFunc("GET /api/share", s.shareH.Link)
	mux.HandleFunc("PUT /api/share", s.shareH.SetSharing)

	// Import / export
	mux.HandleFunc("GET /api/export", s.transferH.Export)
	mux.HandleFunc("POST /api/import", s.transferH.Import)

	// Monthly reminders
	mux.HandleFunc("GET /api/reminders", s.reminderH.Get)
	mux.HandleFunc("PUT /api/reminders", s.reminderH.Save)

	// Image generation
	mux.HandleFunc("POST /api/images", s.imageH.Generate)
}
