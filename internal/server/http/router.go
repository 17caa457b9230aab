package httpserver

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"xiangqi/internal/server/game"
)

// Dirs 静态资源和棋谱目录，空串表示不挂载
type Dirs struct {
	Desktop string
	Mobile  string
	Records string
}

// NewRouter 组装 /api/*、静态页面和已保存的棋谱
func NewRouter(games *game.Manager, log logrus.FieldLogger, dirs Dirs) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/", NewHandler(games, log, dirs.Records))
	RegisterStaticRoutes(mux, dirs)
	return mux
}
