package misc

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"sync"

	log "github.com/sirupsen/logrus"
)

type Quote struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Genre  string `json:"genre"`
}

type QuotesManager struct {
	mu           sync.RWMutex
	quotes       []*Quote
	genresQuotes map[string][]*Quote
}

// NewQuotesManager reads motivational quotes from a semicolon separated
// CSV: QUOTE;AUTHOR;GENRE.
func NewQuotesManager(quotesCsvReader *csv.Reader) (*QuotesManager, error) {
	qm := &QuotesManager{}
	if err := qm.Reload(quotesCsvReader); err != nil {
		return nil, err
	}
	return qm, nil
}

// Reload replaces the whole quote set. The old set stays in place
// when the new source fails to parse.
func (qm *QuotesManager) Reload(quotesCsvReader *csv.Reader) error {
	log.Println("reading quotes CSV ...")

	var quotes []*Quote
	genresQuotes := make(map[string][]*Quote)

	quotesCsvReader.Comma = ';'
	for {
		record, err := quotesCsvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return err
		}

		if len(record) != 3 {
			return fmt.Errorf("record [%s] does not have 3 elements", record)
		}

		quote := &Quote{
			Text:   record[0],
			Author: record[1],
			Genre:  record[2],
		}
		quotes = append(quotes, quote)
		genresQuotes[quote.Genre] = append(genresQuotes[quote.Genre], quote)
	}

	if len(quotes) == 0 {
		return fmt.Errorf("no quotes read")
	}

	log.Printf("quotes CSV read %d quotes", len(quotes))

	qm.mu.Lock()
	qm.quotes = quotes
	qm.genresQuotes = genresQuotes
	qm.mu.Unlock()

	return nil
}

func (qm *QuotesManager) Count() int {
	qm.mu.RLock()
	defer qm.mu.RUnlock()
	return len(qm.quotes)
}

func (qm *QuotesManager) RandomQuote() *Quote {
	qm.mu.RLock()
	defer qm.mu.RUnlock()
	return qm.quotes[rand.Intn(len(qm.quotes))]
}

// RandomQuoteByGenre falls back to any quote when the genre is unknown.
func (qm *QuotesManager) RandomQuoteByGenre(genre string) *Quote {
	qm.mu.RLock()
	quotes, ok := qm.genresQuotes[genre]
	qm.mu.RUnlock()
	if !ok || len(quotes) == 0 {
		return qm.RandomQuote()
	}
	return quotes[rand.Intn(len(quotes))]
}
