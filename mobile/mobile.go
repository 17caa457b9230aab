package mobile

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"xiangqi/internal/server/game"
	httpserver "xiangqi/internal/server/http"
)

// StartServer starts the local HTTP server.
// webDir: physical path to the extracted web assets
// recordDir: where /api/save writes records, empty to disable
// port: port to listen on, e.g. "2888"
func StartServer(webDir string, recordDir string, port string) {
	mux := httpserver.NewRouter(game.NewManager(), logrus.StandardLogger(), httpserver.Dirs{
		Desktop: webDir,
		Records: recordDir,
	})

	// 后台运行，不阻塞 Android UI 线程
	go func() {
		if err := http.ListenAndServe("127.0.0.1:"+port, mux); err != nil {
			logrus.WithError(err).Error("server error")
		}
	}()
}
