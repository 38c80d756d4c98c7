package stores

import (
	_ "embed"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

//go:embed stores.yaml
var catalogData []byte

type Maps struct {
	Google string `json:"google_maps,omitempty" yaml:"google"`
	Naver  string `json:"naver_maps,omitempty"  yaml:"naver"`
}

type Store struct {
	ID         string `json:"id"   yaml:"id"`
	Name       string `json:"name" yaml:"name"`
	WebhookURL string `json:"-"    yaml:"webhook_url"`
	Maps       `yaml:"maps"`
}

// Catalog is the static list of partner stores.
type Catalog struct {
	Stores []Store `yaml:"stores"`
}

func (c *Catalog) Find(id string) (Store, bool) {
	id = strings.ToLower(strings.TrimSpace(id))

	idx := slices.IndexFunc(c.Stores, func(store Store) bool {
		return store.ID == id
	})

	if idx == -1 {
		return Store{}, false
	}

	return c.Stores[idx], true
}

func (c *Catalog) Exists(id string) bool {
	_, ok := c.Find(id)

	return ok
}

// WebhookURL returns the spreadsheet endpoint of a store, or "" when it has none.
func (c *Catalog) WebhookURL(id string) string {
	store, _ := c.Find(id)

	return store.WebhookURL
}

func (c *Catalog) List() []Store {
	return slices.Clone(c.Stores)
}

func Parse(data []byte) (*Catalog, error) {
	var catalog Catalog

	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to decode store catalog: %w", err)
	}

	for _, store := range catalog.Stores {
		if store.ID == "" {
			return nil, fmt.Errorf("store %q has no id", store.Name)
		}
	}

	return &catalog, nil
}

// Get loads the embedded catalog. The file ships with the binary, so a decode failure is fatal.
func Get() *Catalog {
	catalog, err := Parse(catalogData)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to decode embedded store catalog")
	}

	log.Info().Int("stores", len(catalog.Stores)).Msg("Successfully loaded embedded store catalog")

	return catalog
}
