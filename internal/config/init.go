package config

import (
	"os"

	"github.com/aadarsh214/seogen/internal/foundation/errors"
)

const exampleConfig = `# seogen configuration
site:
  base_url: https://aadarsh.pro
  name: Aadarsh Gupta
  og_image_path: /brand-icon.svg
  twitter_handle: "@aadarsh214"
  person_name: Aadarsh Gupta
  job_title: Software Engineer and AI Builder
  static_pages:
    - path: /
      priority: 1.0
    - path: /resume
      priority: 0.9
    - path: /work
      priority: 0.8
    - path: /skill-wall
      priority: 0.7
    - path: /contact
      priority: 0.6

generation:
  max_urls_per_sitemap: 50000
  authority_iterations: 10
  # synthetic_scale shrinks the synthetic corpus for local runs; 1.0 is
  # the full 100k-page matrix.
  synthetic_scale: 1.0

data:
  directory: ./data

output:
  directory: ./public
  clean: true

store:
  path: ./seogen.db

events:
  enabled: false
  nats_url: nats://localhost:4222
  subject: seogen.runs

daemon:
  interval: 6h
  metrics_listen: ":9090"

logging:
  level: info
  format: text
`

// Init writes an example configuration file.
func Init(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.ConfigError("configuration file already exists (use --force to overwrite)").
			WithContext("path", path).
			Build()
	}
	if err := os.WriteFile(path, []byte(exampleConfig), 0o644); err != nil {
		return errors.Wrap(err, errors.CategoryFileSystem, "write config file").
			WithContext("path", path).
			Build()
	}
	return nil
}
