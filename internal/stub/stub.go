// Package stub is an in-memory farm backend implementing the REST
// contract the terminal client speaks. It exists for local development
// and end-to-end tests; nothing persists across restarts.
package stub

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/NirunaShyamal/farm-sub001/internal/models"
	"github.com/NirunaShyamal/farm-sub001/internal/store"
	"github.com/NirunaShyamal/farm-sub001/internal/summary"
	"github.com/NirunaShyamal/farm-sub001/internal/util"
)

// Server holds the in-memory collections behind the REST surface.
type Server struct {
	ids *util.IDGenerator

	production *resource[models.ProductionRecord]
	sales      *resource[models.SalesOrder]
	feed       *resource[models.FeedItem]
	tasks      *resource[models.Task]
	finance    *resource[models.FinancialRecord]
}

// NewServer creates a stub backend. When seeded is true the
// collections start with fixture data.
func NewServer(seeded bool) *Server {
	ids := util.NewIDGenerator()

	s := &Server{
		ids: ids,
		production: newResource(ids, func(r models.ProductionRecord, id string) models.ProductionRecord {
			r.ID = id
			return r
		}),
		sales: newResource(ids, func(o models.SalesOrder, id string) models.SalesOrder {
			o.ID = id
			return o
		}),
		feed: newResource(ids, func(i models.FeedItem, id string) models.FeedItem {
			i.ID = id
			return i
		}),
		tasks: newResource(ids, func(t models.Task, id string) models.Task {
			t.ID = id
			return t
		}),
		finance: newResource(ids, func(r models.FinancialRecord, id string) models.FinancialRecord {
			r.ID = id
			return r
		}),
	}

	if seeded {
		s.seed()
	}
	return s
}

// Router builds the gin engine serving the API under /api.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")

	registerCollection(api, "egg-production", s.production, func(records []models.ProductionRecord) any {
		return summary.Production(records, s.sales.all(), true)
	})
	registerCollection(api, "sales-orders", s.sales, func(orders []models.SalesOrder) any {
		return summary.Sales(orders)
	})
	registerCollection(api, "feed-inventory", s.feed, func(items []models.FeedItem) any {
		return summary.Feed(items, time.Now())
	})
	registerCollection(api, "task-scheduling", s.tasks, func(tasks []models.Task) any {
		return summary.Tasks(tasks)
	})
	registerCollection(api, "financial-records", s.finance, func(records []models.FinancialRecord) any {
		return summary.Finance(records)
	})

	api.GET("/health", func(c *gin.Context) {
		ok(c, gin.H{"status": "ok"})
	})

	api.POST("/contact", s.handleContact)
	api.GET("/contact/test", func(c *gin.Context) {
		ok(c, gin.H{"relay": "ready"})
	})

	return r
}

func (s *Server) handleContact(c *gin.Context) {
	var msg models.ContactMessage
	if err := c.ShouldBindJSON(&msg); err != nil {
		fail(c, http.StatusBadRequest, "Invalid contact payload")
		return
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		fail(c, http.StatusBadRequest, "Name, email and message are required")
		return
	}
	ok(c, gin.H{"delivered": true})
}

// ok writes the success envelope.
func ok(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

// created writes the success envelope with a 201.
func created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data})
}

// fail writes the failure envelope.
func fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// resource is one mutex-guarded in-memory collection.
type resource[T store.Record] struct {
	mu     sync.Mutex
	items  []T
	ids    *util.IDGenerator
	withID func(T, string) T
}

func newResource[T store.Record](ids *util.IDGenerator, withID func(T, string) T) *resource[T] {
	return &resource[T]{ids: ids, withID: withID}
}

func (r *resource[T]) all() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

func (r *resource[T]) add(item T) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	item = r.withID(item, r.ids.NewID())
	r.items = append(r.items, item)
	return item
}

func (r *resource[T]) get(id string) (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, item := range r.items {
		if item.RecordID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (r *resource[T]) replace(id string, item T) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.RecordID() == id {
			r.items[i] = r.withID(item, id)
			return true
		}
	}
	return false
}

func (r *resource[T]) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.items {
		if existing.RecordID() == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return true
		}
	}
	return false
}

// registerCollection mounts the CRUD plus summary routes for one
// collection.
func registerCollection[T store.Record](g *gin.RouterGroup, path string, res *resource[T], summarize func([]T) any) {
	g.GET("/"+path, func(c *gin.Context) {
		ok(c, res.all())
	})

	g.GET("/"+path+"/summary", func(c *gin.Context) {
		ok(c, summarize(res.all()))
	})

	g.GET("/"+path+"/:id", func(c *gin.Context) {
		item, found := res.get(c.Param("id"))
		if !found {
			fail(c, http.StatusNotFound, "Record not found")
			return
		}
		ok(c, item)
	})

	g.POST("/"+path, func(c *gin.Context) {
		var draft T
		if err := c.ShouldBindJSON(&draft); err != nil {
			fail(c, http.StatusBadRequest, "Invalid record payload")
			return
		}
		created(c, res.add(draft))
	})

	g.PUT("/"+path+"/:id", func(c *gin.Context) {
		var record T
		if err := c.ShouldBindJSON(&record); err != nil {
			fail(c, http.StatusBadRequest, "Invalid record payload")
			return
		}
		if !res.replace(c.Param("id"), record) {
			fail(c, http.StatusNotFound, "Record not found")
			return
		}
		item, _ := res.get(c.Param("id"))
		ok(c, item)
	})

	g.DELETE("/"+path+"/:id", func(c *gin.Context) {
		if !res.remove(c.Param("id")) {
			fail(c, http.StatusNotFound, "Record not found")
			return
		}
		ok(c, nil)
	})
}
