package cache

// LayoutKeyOpts are the options that change a composed layout.
type LayoutKeyOpts struct {
	ContainerWidth float64 `json:"container_width"`
	Language       string  `json:"language,omitempty"`
}

// ArtifactKeyOpts are the options that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey keys a composed layout by request hash.
	LayoutKey(requestHash string, opts LayoutKeyOpts) string
	// GenerateKey keys a generation service response by request hash.
	GenerateKey(requestHash string) string
	// ArtifactKey keys a rendered artifact by layout hash.
	ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey implements [Keyer].
func (DefaultKeyer) LayoutKey(requestHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", requestHash, opts)
}

// GenerateKey implements [Keyer].
func (DefaultKeyer) GenerateKey(requestHash string) string {
	return "generate:" + requestHash
}

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(layoutHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", layoutHash, opts)
}
