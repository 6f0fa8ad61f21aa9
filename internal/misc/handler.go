package misc

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"os"

	"github.com/avolkov/fittrack/pkg"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	quotesManager *QuotesManager
	quotesCsvPath string
	versionInfo   string
}

func NewHandler(quotesManager *QuotesManager, quotesCsvPath, versionInfo string) *Handler {
	return &Handler{
		quotesManager: quotesManager,
		quotesCsvPath: quotesCsvPath,
		versionInfo:   versionInfo,
	}
}

func (handler *Handler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks")
}

func (handler *Handler) HandleGetRandomQuote(w http.ResponseWriter, r *http.Request) {
	var q *Quote
	if genre := r.URL.Query().Get("genre"); genre != "" {
		q = handler.quotesManager.RandomQuoteByGenre(genre)
	} else {
		q = handler.quotesManager.RandomQuote()
	}

	qBytes, err := json.Marshal(q)
	if err != nil {
		log.Errorf("marshal quote error: %s", err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, qBytes, http.StatusOK)
}

// HandleReloadQuotes re-reads the quotes CSV from disk, so the set can
// be refreshed without a restart.
func (handler *Handler) HandleReloadQuotes(w http.ResponseWriter, r *http.Request) {
	quotesCsvFile, err := os.Open(handler.quotesCsvPath)
	if err != nil {
		log.Errorf("reload quotes, open csv: %s", err)
		http.Error(w, "failed to reload quotes", http.StatusInternalServerError)
		return
	}
	defer func() {
		if err := quotesCsvFile.Close(); err != nil {
			log.Warnf("reload quotes, close csv file: %s", err)
		}
	}()

	if err := handler.quotesManager.Reload(csv.NewReader(quotesCsvFile)); err != nil {
		log.Errorf("reload quotes: %s", err)
		http.Error(w, "failed to reload quotes", http.StatusInternalServerError)
		return
	}

	log.Printf("quotes reloaded, %d quotes in the set", handler.quotesManager.Count())
	pkg.WriteTextResponseOK(w, "reloaded")
}

func (handler *Handler) HandleGetVersionInfo(w http.ResponseWriter, r *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
