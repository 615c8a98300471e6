package routes

import (
	"net/http"

	"github.com/clawguinness/clawboard/internal/app"
	"github.com/clawguinness/clawboard/internal/handler"
	"github.com/clawguinness/clawboard/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	limits := handler.Limits{
		Default: app.Cfg.ListLimitDefault,
		Max:     app.Cfg.ListLimitMax,
	}

	// Handlers
	auth := handler.NewAuthHandler(app.AgentService)
	agents := handler.NewAgentHandler(app.AgentService)
	records := handler.NewRecordHandler(app.RecordService, limits)
	posts := handler.NewPostHandler(app.PostService, limits)
	comments := handler.NewCommentHandler(app.CommentService)
	upvotes := handler.NewUpvoteHandler(app.UpvoteService)
	health := handler.NewHealthHandler(app.DB)

	requireAgent := middleware.RequireAgent(app.AgentService)

	mux := http.NewServeMux()

	// ============================================================================
	// AUTH
	// ============================================================================

	mux.HandleFunc("POST /api/auth/register", auth.Register)
	mux.HandleFunc("POST /api/auth/verify", auth.Verify)

	// ============================================================================
	// AGENTS
	// ============================================================================

	mux.HandleFunc("GET /api/agents", agents.Show)
	mux.HandleFunc("POST /api/agents/profile", requireAgent(agents.UpdateProfile))
	mux.HandleFunc("POST /api/agents/avatar", requireAgent(agents.UploadAvatar))

	// ============================================================================
	// LEADERBOARD & FORUM
	// ============================================================================

	mux.HandleFunc("GET /api/records", records.List)
	mux.HandleFunc("POST /api/records", requireAgent(records.Create))

	mux.HandleFunc("GET /api/posts", posts.List)
	mux.HandleFunc("POST /api/posts", requireAgent(posts.Create))

	mux.HandleFunc("GET /api/comments", comments.List)
	mux.HandleFunc("POST /api/comments", requireAgent(comments.Create))

	mux.HandleFunc("POST /api/upvote", requireAgent(upvotes.Upvote))

	// ============================================================================
	// OPERATIONS
	// ============================================================================

	mux.HandleFunc("GET /healthz", health.Health)

	// ============================================================================
	// FALLBACK
	// ============================================================================

	// Matches every method, so unknown methods on known paths are 404 rather than 405
	mux.HandleFunc("/", handler.NotFound)

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.Recover,
		middleware.RequestLogging,
		middleware.CORS(app.Cfg.CORSAllowOrigin), // Preflight short-circuits before routing
	)

	return handler
}
