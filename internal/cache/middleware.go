package cache

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"
)

type bufferedWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bufferedWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bufferedWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}

// PageCache sert la réponse mémorisée si elle est encore valide, sinon
// mémorise la réponse rendue. Clé : chemin + query + visiteur, pour ne
// jamais servir une page personnalisée à un autre visiteur.
func PageCache(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.URL.RequestURI() + "|" + c.GetString("user_id")

		if e, ok := store.Get(key); ok {
			c.Data(e.Status, e.ContentType, e.Body)
			c.Abort()
			return
		}

		w := &bufferedWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = w

		c.Next()

		if w.Status() == http.StatusOK {
			store.Set(key, Entry{
				Status:      w.Status(),
				ContentType: w.Header().Get("Content-Type"),
				Body:        w.buf.Bytes(),
			})
		}
	}
}
