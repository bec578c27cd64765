package web

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/grammarkit/bnf"
)

// maxGrammarBytes caps the request body for /api/parse. Grammars are small;
// anything past this is not a grammar.
const maxGrammarBytes = 1 << 20

// parseResponse is the success body of /api/parse.
type parseResponse struct {
	Grammar *bnf.Grammar `json:"grammar"`
}

// parseFailure describes where and why parsing stopped.
type parseFailure struct {
	Message  string `json:"message"`
	Expected string `json:"expected,omitempty"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Offset   int    `json:"offset"`
}

// errorResponse is the body of every non-2xx JSON response.
type errorResponse struct {
	Error parseFailure `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// handleParse accepts the raw grammar text as the request body and answers
// with the parsed document, or a 422 carrying the structured failure.
func handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxGrammarBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusBadRequest, errorResponse{
				Error: parseFailure{Message: "request body too large"},
			})
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: parseFailure{Message: "could not read request body"},
		})
		return
	}

	grammar, err := bnf.ParseString(string(body))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: failureFrom(err)})
		return
	}
	writeJSON(w, http.StatusOK, parseResponse{Grammar: grammar})
}

// failureFrom flattens a bnf parse error into the wire schema.
func failureFrom(err error) parseFailure {
	var perr bnf.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		return parseFailure{
			Message:  perr.Error(),
			Expected: perr.Expected(),
			Line:     pos.Line,
			Column:   pos.Column,
			Offset:   pos.Offset,
		}
	}
	return parseFailure{Message: err.Error()}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
