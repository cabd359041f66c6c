package flash

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

// Mensajes one-shot estilo "messages framework": se escriben en una
// cookie y se consumen (y borran) en el siguiente render.

const cookieName = "registry_flash"

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

func Success(w http.ResponseWriter, r *http.Request, text string) {
	add(w, r, Message{Level: LevelSuccess, Text: text})
}

func Error(w http.ResponseWriter, r *http.Request, text string) {
	add(w, r, Message{Level: LevelError, Text: text})
}

func add(w http.ResponseWriter, r *http.Request, m Message) {
	// Acumula sobre lo ya pendiente para no pisar mensajes previos
	// escritos durante el mismo request.
	msgs := peek(r)
	msgs = append(msgs, m)

	b, err := json.Marshal(msgs)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    base64.RawURLEncoding.EncodeToString(b),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop devuelve los mensajes pendientes y limpia la cookie.
func Pop(w http.ResponseWriter, r *http.Request) []Message {
	msgs := peek(r)
	if len(msgs) == 0 {
		return nil
	}

	http.SetCookie(w, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
	})

	return msgs
}

func peek(r *http.Request) []Message {
	c, err := r.Cookie(cookieName)
	if err != nil || c.Value == "" {
		return nil
	}

	b, err := base64.RawURLEncoding.DecodeString(c.Value)
	if err != nil {
		return nil
	}

	var msgs []Message
	if err := json.Unmarshal(b, &msgs); err != nil {
		return nil
	}
	return msgs
}
