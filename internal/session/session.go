package session

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	cookieName = "st_session"
	cartIDKey  = "cart_id"
	contextKey = "cart_id"
)

// NewStore pravi cookie store za anonimne sesije korpe.
func NewStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 30,
		HttpOnly: true,
		Secure:   false, // false u dev-u, true u produkciji iza TLS-a
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// Middleware garantuje da svaki zahtev ima ID sesije korpe i stavlja ga u Gin kontekst.
func Middleware(store sessions.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := store.Get(c.Request, cookieName)
		if err != nil {
			// Pokvaren ili istekao cookie — pravimo novu sesiju.
			log.Printf("⚠️ Neispravna sesija, pravim novu: %v", err)
		}

		id, ok := sess.Values[cartIDKey].(string)
		if !ok || id == "" {
			id = uuid.NewString()
			sess.Values[cartIDKey] = id
			if err := sess.Save(c.Request, c.Writer); err != nil {
				log.Printf("❌ Greška pri čuvanju sesije: %v", err)
			}
		}

		c.Set(contextKey, id)
		c.Next()
	}
}

// CartID vraća ID korpe iz Gin konteksta.
func CartID(c *gin.Context) string {
	return c.GetString(contextKey)
}
