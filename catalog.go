package sngmcp

import "context"

// ToolErrorCode is the machine-readable code carried by a failed lookup.
type ToolErrorCode string

// ToolErrorCode constants.
const (
	CodeInvalidInput          ToolErrorCode = "INVALID_INPUT"
	CodeComponentNotFound     ToolErrorCode = "COMPONENT_NOT_FOUND"
	CodeDocNotFound           ToolErrorCode = "DOC_NOT_FOUND"
	CodeIconNotFound          ToolErrorCode = "ICON_NOT_FOUND"
	CodeDataSourceUnavailable ToolErrorCode = "DATA_SOURCE_UNAVAILABLE"
	CodeInternalError         ToolErrorCode = "INTERNAL_ERROR"
)

// CatalogService answers lookups over a loaded snapshot.
// Lookups that miss return a *Miss error carrying fallback guidance.
type CatalogService interface {
	// ListComponents filters the component list. It never misses.
	ListComponents(ctx context.Context, req ListComponentsRequest) (*ComponentList, error)

	// ComponentDocs returns the parsed docs of one component.
	ComponentDocs(ctx context.Context, req ComponentDocsRequest) (*ComponentDocsResult, error)

	// ComponentExamples returns the examples and toc of one component page.
	ComponentExamples(ctx context.Context, req ComponentRequest) (*ComponentExamplesResult, error)

	// InstallCommand synthesizes install commands for a set of components.
	InstallCommand(ctx context.Context, req InstallCommandRequest) (*InstallCommandResult, error)

	// DependencyMap returns the inferred dependencies of one component.
	DependencyMap(ctx context.Context, req ComponentRequest) (*DependencyMapResult, error)

	// IconCatalog searches icons. It never misses.
	IconCatalog(ctx context.Context, req IconCatalogRequest) (*IconCatalogResult, error)

	// DashboardContext returns the parsed dashboard context page.
	DashboardContext(ctx context.Context, req DashboardContextRequest) (*DashboardContextResult, error)
}

// ListComponentsRequest holds the arguments of ListComponents.
type ListComponentsRequest struct {
	Query             string `json:"query,omitempty"`
	IncludeDeprecated bool   `json:"includeDeprecated,omitempty"`
}

// ComponentSummary is the listing projection of a component.
type ComponentSummary struct {
	Name        string `json:"name"`
	Selector    string `json:"selector"`
	InstallName string `json:"installName"`
	DocURL      string `json:"docUrl"`
	Deprecated  bool   `json:"deprecated"`
}

// QueryFallback is attached to a listing whose query matched nothing.
type QueryFallback struct {
	Query string `json:"query"`
	*ComponentFallback
}

// ComponentList is the result of ListComponents.
type ComponentList struct {
	Components    []ComponentSummary `json:"components"`
	Count         int                `json:"count"`
	QueryFallback *QueryFallback     `json:"queryFallback,omitempty"`
	SourceFiles   []string           `json:"sourceFiles"`
}

// ComponentRequest identifies one component.
type ComponentRequest struct {
	Component string `json:"component"`
}

// ComponentDocsRequest holds the arguments of ComponentDocs.
type ComponentDocsRequest struct {
	Component          string `json:"component"`
	IncludeRawMarkdown bool   `json:"includeRawMarkdown,omitempty"`
}

// ComponentDocsResult is the result of ComponentDocs.
type ComponentDocsResult struct {
	Component      string    `json:"component"`
	Title          string    `json:"title"`
	Summary        string    `json:"summary"`
	Sections       []Section `json:"sections"`
	InstallCommand string    `json:"installCommand"`
	DocURL         string    `json:"docUrl"`
	RawMarkdown    string    `json:"rawMarkdown,omitempty"`
	SourceFiles    []string  `json:"sourceFiles"`
}

// ComponentExamplesResult is the result of ComponentExamples.
type ComponentExamplesResult struct {
	Component   string    `json:"component"`
	Examples    []Example `json:"examples"`
	Toc         []TocItem `json:"toc"`
	SourceFiles []string  `json:"sourceFiles"`
}

// InstallCommandRequest holds the arguments of InstallCommand.
type InstallCommandRequest struct {
	Components  []string `json:"components,omitempty" validate:"dive,required"`
	IncludeInit bool     `json:"includeInit,omitempty"`
	IncludeAll  bool     `json:"includeAll,omitempty"`
}

// InstallCommandResult is the result of InstallCommand.
type InstallCommandResult struct {
	Commands    []string `json:"commands"`
	SourceFiles []string `json:"sourceFiles"`
}

// DependencyMapResult is the result of DependencyMap.
type DependencyMapResult struct {
	Component        string       `json:"component"`
	Dependencies     []Dependency `json:"dependencies"`
	PeerDependencies []string     `json:"peerDependencies"`
	SourceFiles      []string     `json:"sourceFiles"`
}

// IconCatalogRequest holds the arguments of IconCatalog.
type IconCatalogRequest struct {
	Query   string      `json:"query,omitempty"`
	Variant IconVariant `json:"variant,omitempty" validate:"omitempty,oneof=regular solid"`
	Limit   int         `json:"limit,omitempty" validate:"omitempty,min=1,max=200"`
}

// IconFallbackPolicy states how to proceed when no icon fits.
type IconFallbackPolicy struct {
	PreferredSource  string `json:"preferredSource"`
	InlineSVGAllowed bool   `json:"inlineSvgAllowed"`
	Guidance         string `json:"guidance"`
}

// IconFallbackSuggestion is attached to an icon search with no matches.
type IconFallbackSuggestion struct {
	Strategy string `json:"strategy"`
	Reason   string `json:"reason"`
	Example  string `json:"example"`
}

// IconCatalogResult is the result of IconCatalog.
type IconCatalogResult struct {
	Icons              []Icon                  `json:"icons"`
	Count              int                     `json:"count"`
	FallbackPolicy     IconFallbackPolicy      `json:"fallbackPolicy"`
	FallbackSuggestion *IconFallbackSuggestion `json:"fallbackSuggestion,omitempty"`
	SourceFiles        []string                `json:"sourceFiles"`
}

// DashboardContextRequest holds the arguments of DashboardContext.
type DashboardContextRequest struct {
	IncludeRawMarkdown bool `json:"includeRawMarkdown,omitempty"`
}

// DashboardContextResult is the result of DashboardContext.
type DashboardContextResult struct {
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Sections    []Section `json:"sections"`
	ContextURL  string    `json:"contextUrl"`
	RawMarkdown string    `json:"rawMarkdown,omitempty"`
	SourceFiles []string  `json:"sourceFiles"`
}

// ComponentFallbackPolicy states whether custom components may be built.
type ComponentFallbackPolicy struct {
	PreferredSource        string `json:"preferredSource"`
	CustomComponentAllowed bool   `json:"customComponentAllowed"`
	Guidance               string `json:"guidance"`
}

// ComponentFallback is the guidance attached to component misses.
type ComponentFallback struct {
	MissingComponents        []string                `json:"missingComponents"`
	ComponentFallbackPolicy  ComponentFallbackPolicy `json:"componentFallbackPolicy"`
	AuthoringGuide           AuthoringGuide          `json:"authoringGuide"`
	SuggestedNextSteps       []string                `json:"suggestedNextSteps"`
	AvailableComponentSample []string                `json:"availableComponentSample"`
}

// Miss is returned by lookups that could not be answered. It carries a
// remediation hint and, for component misses, fallback guidance.
type Miss struct {
	Code     ToolErrorCode
	Message  string
	Hint     string
	Fallback *ComponentFallback
}

// Error implements the error interface.
func (m *Miss) Error() string {
	return string(m.Code) + ": " + m.Message
}

// ToolError is the error block of a miss payload.
type ToolError struct {
	Code    ToolErrorCode `json:"code"`
	Message string        `json:"message"`
	Hint    string        `json:"hint,omitempty"`
}

// MissPayload is the serialized form of a miss.
type MissPayload struct {
	Error ToolError `json:"error"`
	*ComponentFallback
}

// Payload returns the serializable form of the miss.
func (m *Miss) Payload() MissPayload {
	return MissPayload{
		Error:             ToolError{Code: m.Code, Message: m.Message, Hint: m.Hint},
		ComponentFallback: m.Fallback,
	}
}
