package responder

import (
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/weaveworks/common/logging"
	"github.com/weaveworks/common/middleware"

	"github.com/weaveworks/hello/common"
)

// Greeting is the body of every response.
const Greeting = "Hello World!"

const greetRoute = "greet"

func init() {
	prometheus.MustRegister(common.RequestDuration)
}

// Greet answers any request with 200 and Greeting. Method, path, headers and
// body are never looked at.
func Greet(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, Greeting)
}

func matchAll(*http.Request, *mux.RouteMatch) bool {
	return true
}

// Handler is the full pipeline the responder serves: a single catch-all
// route, instrumented and logged to log. The route matches requests with an
// empty path too (CONNECT authority-form), so mux never answers 404.
func Handler(log logging.Interface) http.Handler {
	router := mux.NewRouter().StrictSlash(false).SkipClean(true)
	router.MatcherFunc(matchAll).Name(greetRoute).HandlerFunc(Greet)
	return middleware.Merge(
		middleware.Log{
			Log: log,
		},
		middleware.Instrument{
			RouteMatcher: router,
			Duration:     common.RequestDuration,
		},
	).Wrap(router)
}
