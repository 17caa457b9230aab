package httpserver

import (
	"net/http"
	"strings"
)

const viewCookieName = "xiangqi_view"

// RegisterStaticRoutes 挂载：
//   - /web/*        桌面版页面
//   - /web_mobile/* 手机版页面（缺省同桌面版）
//   - /records/*    已保存的棋谱（Records 非空时）
//   - /             按 ?view=、cookie、User-Agent 跳到对应页面
func RegisterStaticRoutes(mux *http.ServeMux, dirs Dirs) {
	if mux == nil {
		return
	}
	desktop, mobile := dirs.Desktop, dirs.Mobile
	if desktop == "" {
		desktop = "."
	}
	if mobile == "" {
		mobile = desktop
	}

	mux.Handle("/web/", http.StripPrefix("/web/", http.FileServer(http.Dir(desktop))))
	mux.Handle("/web_mobile/", http.StripPrefix("/web_mobile/", http.FileServer(http.Dir(mobile))))
	if dirs.Records != "" {
		mux.Handle("/records/", http.StripPrefix("/records/", http.FileServer(http.Dir(dirs.Records))))
	}

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			target := "/web/"
			if pickView(w, r) == viewMobile {
				target = "/web_mobile/"
			}
			w.Header().Set("Vary", "User-Agent, Cookie")
			http.Redirect(w, r, target, http.StatusFound)
		case "/web", "/web_mobile", "/records":
			http.Redirect(w, r, r.URL.Path+"/", http.StatusFound)
		default:
			http.NotFound(w, r)
		}
	})
}

const (
	viewDesktop = "web"
	viewMobile  = "mobile"
)

func pickView(w http.ResponseWriter, r *http.Request) string {
	if v, ok := normalizeView(r.URL.Query().Get("view")); ok {
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   30 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := normalizeView(c.Value); ok {
			return v
		}
	}
	if isMobileUA(r.UserAgent()) {
		return viewMobile
	}
	return viewDesktop
}

func normalizeView(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "web", "desktop", "pc":
		return viewDesktop, true
	case "mobile", "m", "phone", "web_mobile":
		return viewMobile, true
	}
	return "", false
}

var mobileUANeedles = []string{"android", "iphone", "ipad", "ipod", "mobile", "windows phone", "harmony"}

func isMobileUA(ua string) bool {
	s := strings.ToLower(ua)
	for _, n := range mobileUANeedles {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
