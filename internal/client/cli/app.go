package cli

import (
	"bufio"
	"context"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/snapfeed/snapfeed/internal/client/client"
	"github.com/snapfeed/snapfeed/internal/client/config"
	"github.com/snapfeed/snapfeed/internal/client/media"
	"github.com/snapfeed/snapfeed/internal/client/models"
	"github.com/snapfeed/snapfeed/internal/client/services"
	"github.com/snapfeed/snapfeed/internal/client/session"
	"github.com/snapfeed/snapfeed/internal/client/store"
	"github.com/snapfeed/snapfeed/internal/client/view"
	"github.com/snapfeed/snapfeed/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	authService    services.AuthService
	postService    services.PostService
	profileService services.ProfileService
	store          *store.Store
	uploader       *media.Uploader
	lifecycle      *view.Lifecycle
	identity       *models.Identity
	Mode           Mode
	reader         *bufio.Reader

	mu      sync.Mutex
	feed    []models.EnrichedPost
	myPosts []models.EnrichedPost
	gallery []models.GalleryImage
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	db, err := session.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}
	sessionStore := session.NewStore(session.NewSQLiteRepository(db))

	apiClient, err := client.NewSnapfeedClient(c.ServerEndpointAddr)
	if err != nil {
		return nil, err
	}

	docStore := store.NewStore(apiClient, logger)
	uploader := media.NewUploader(c.MediaUploadURL, c.UploadPreset)

	as := services.NewAuthService(apiClient, sessionStore, docStore, logger)
	ps := services.NewPostService(docStore, uploader, logger)
	prs := services.NewProfileService(docStore, apiClient, logger)

	return &App{
		config:         c,
		logger:         logger,
		authService:    as,
		postService:    ps,
		profileService: prs,
		store:          docStore,
		uploader:       uploader,
		lifecycle:      view.NewLifecycle(),
		Mode:           ModeOffline,
		reader:         bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		printlnFn("Switched to " + string(mode) + " mode")
	}
}

func (a *App) Run(ctx context.Context) {
	defer a.authService.Close(ctx)
	a.Root(ctx)
}

func (a *App) isSignedIn() bool {
	return a.identity != nil
}

// setFeed, setMyPosts, and setGallery receive full replacement snapshots from
// the view reconcilers.
func (a *App) setFeed(posts []models.EnrichedPost) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.feed = posts
}

func (a *App) setMyPosts(posts []models.EnrichedPost) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.myPosts = posts
}

func (a *App) setGallery(images []models.GalleryImage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.gallery = images
}

func (a *App) currentFeed() []models.EnrichedPost {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.feed
}

func (a *App) currentMyPosts() []models.EnrichedPost {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.myPosts
}

func (a *App) currentGallery() []models.GalleryImage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.gallery
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.authService.Ping(pingCtx)
			cancel()

			if err != nil {
				if a.Mode == ModeOnline {
					a.setMode(ModeOffline)
				}
			} else {
				if a.Mode != ModeOnline {
					a.setMode(ModeOnline)
				}
			}

		case <-ctx.Done():
			return
		}
	}
}
