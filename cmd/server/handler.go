package server

import (
	"context"
	"net/http"

	. "github.com/DGHeroin/SysInfo/SysInfo"
	"github.com/DGHeroin/SysInfo/config"
	"github.com/gin-gonic/gin"
)

// Readers is the set of metric readers the handler can call.
type Readers interface {
	Platform() (*PlatformInfo, error)
	Uptime() (*UptimeInfo, error)
	Memory() (*MemoryInfo, error)
	Load() (*LoadInfo, error)
	Storage(ctx context.Context, mounts []string) (Storage, error)
}

// NewRouter answers GET on every path with the report for the metrics
// enabled in cfg. Other methods get 501.
func NewRouter(cfg config.Config, readers Readers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Debug {
		r.Use(gin.Logger())
	}
	r.GET("/*path", doAuth(cfg), func(c *gin.Context) {
		report, err := collect(c.Request.Context(), cfg, readers)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": -1, "msg": err.Error()})
			return
		}
		c.JSON(http.StatusOK, report)
	})
	r.NoRoute(func(c *gin.Context) {
		c.String(http.StatusNotImplemented, "Unsupported method.")
	})
	return r
}

func doAuth(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.Authorized(c.Query("key")) {
			c.String(http.StatusUnauthorized, "Unauthorized.")
			c.Abort()
			return
		}
		c.Next()
	}
}

// collect calls the enabled readers in the order platform, uptime, memory,
// load, storage. The report is only returned once every reader succeeded.
func collect(ctx context.Context, cfg config.Config, readers Readers) (*Report, error) {
	var (
		report = &Report{}
		err    error
	)
	if cfg.Platform {
		if report.Platform, err = readers.Platform(); err != nil {
			return nil, err
		}
	}
	if cfg.Uptime {
		if report.Uptime, err = readers.Uptime(); err != nil {
			return nil, err
		}
	}
	if cfg.Memory {
		if report.Memory, err = readers.Memory(); err != nil {
			return nil, err
		}
	}
	if cfg.Load {
		if report.Load, err = readers.Load(); err != nil {
			return nil, err
		}
	}
	if len(cfg.Storage) > 0 {
		storage, err := readers.Storage(ctx, cfg.Storage)
		if err != nil {
			return nil, err
		}
		if storage == nil {
			storage = Storage{}
		}
		report.Storage = &storage
	}
	return report, nil
}
