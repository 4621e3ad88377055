// Package egeria is a client SDK for the view services of an Egeria open
// metadata platform.
//
// This package re-exports the core types and functions from the pkg directory,
// allowing users to import simply as:
//
//	import "github.com/demetere/egeria-go"
//
// Example usage:
//
//	client, err := egeria.NewEgeria(egeria.Config{
//	    PlatformURL: "https://localhost:9443",
//	    ViewServer:  "qs-view-server",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	if _, err := client.CreateBearerToken(ctx, "erinoverview", password); err != nil {
//	    log.Fatal(err)
//	}
//	terms, err := client.Glossary().FindTerms(ctx, "Sustain*", egeria.SearchOptions{})
package egeria

import egeriapkg "github.com/demetere/egeria-go/pkg"

// Client types and functions
type (
	// ServerClient holds the connection, credentials and bearer token
	ServerClient = egeriapkg.ServerClient

	// Config holds Egeria client configuration
	Config = egeriapkg.Config

	// Response is a decoded Egeria response envelope
	Response = egeriapkg.Response
)

var (
	NewServerClient    = egeriapkg.NewServerClient
	ConfigFromEnv      = egeriapkg.ConfigFromEnv
	LoadConfigFile     = egeriapkg.LoadConfigFile
	ParseConnectionURL = egeriapkg.ParseConnectionURL
)

const (
	DefaultTimeout  = egeriapkg.DefaultTimeout
	DefaultPageSize = egeriapkg.DefaultPageSize
)

// Composite facades
type (
	// Egeria reaches every service
	Egeria = egeriapkg.Egeria

	// EgeriaTech reaches the view services used to curate metadata
	EgeriaTech = egeriapkg.EgeriaTech

	// EgeriaOps reaches platform and runtime operations
	EgeriaOps = egeriapkg.EgeriaOps

	// EgeriaConfig reaches server configuration
	EgeriaConfig = egeriapkg.EgeriaConfig

	ServiceInfo = egeriapkg.ServiceInfo
	Tier        = egeriapkg.Tier
)

var (
	NewEgeria       = egeriapkg.NewEgeria
	NewEgeriaTech   = egeriapkg.NewEgeriaTech
	NewEgeriaOps    = egeriapkg.NewEgeriaOps
	NewEgeriaConfig = egeriapkg.NewEgeriaConfig

	Services        = egeriapkg.Services
	ServicesInTier  = egeriapkg.ServicesInTier
	LookupService   = egeriapkg.LookupService
	RegisterService = egeriapkg.RegisterService
)

const (
	TierTech   = egeriapkg.TierTech
	TierOps    = egeriapkg.TierOps
	TierConfig = egeriapkg.TierConfig
)

// Service clients
type (
	ActorManager          = egeriapkg.ActorManager
	AutomatedCuration     = egeriapkg.AutomatedCuration
	ClassificationManager = egeriapkg.ClassificationManager
	CollectionManager     = egeriapkg.CollectionManager
	DataDesigner          = egeriapkg.DataDesigner
	FeedbackManager       = egeriapkg.FeedbackManager
	GlossaryManager       = egeriapkg.GlossaryManager
	GovernanceOfficer     = egeriapkg.GovernanceOfficer
	LineageLinker         = egeriapkg.LineageLinker
	MetadataExplorer      = egeriapkg.MetadataExplorer
	MyProfile             = egeriapkg.MyProfile
	PlatformServices      = egeriapkg.PlatformServices
	ProductManager        = egeriapkg.ProductManager
	ProjectManager        = egeriapkg.ProjectManager
	RuntimeManager        = egeriapkg.RuntimeManager
	ServerConfig          = egeriapkg.ServerConfig
	SolutionArchitect     = egeriapkg.SolutionArchitect
	ValidMetadataManager  = egeriapkg.ValidMetadataManager
	ServerStatus          = egeriapkg.ServerStatus
)

// Errors
type (
	// Error is returned by every failed call
	Error = egeriapkg.Error

	// ErrorKind classifies an Error
	ErrorKind = egeriapkg.ErrorKind
)

var (
	ErrAPI              = egeriapkg.ErrAPI
	ErrInvalidParameter = egeriapkg.ErrInvalidParameter
	ErrUnauthorized     = egeriapkg.ErrUnauthorized
	ErrNotFound         = egeriapkg.ErrNotFound
	ErrConnection       = egeriapkg.ErrConnection
	ErrTimeout          = egeriapkg.ErrTimeout
	ErrUnknownService   = egeriapkg.ErrUnknownService
)

// Elements and paging
type (
	// Element is a metadata element as returned by the view services
	Element = egeriapkg.Element

	ElementHeader         = egeriapkg.ElementHeader
	ElementType           = egeriapkg.ElementType
	ElementClassification = egeriapkg.ElementClassification

	// SearchOptions control matching and paging of find requests
	SearchOptions = egeriapkg.SearchOptions

	// PageFunc fetches one page of elements
	PageFunc = egeriapkg.PageFunc
)

var (
	Paginate   = egeriapkg.Paginate
	CollectAll = egeriapkg.CollectAll
)

// Request bodies
type (
	RequestBody                     = egeriapkg.RequestBody
	NewElementRequestBody           = egeriapkg.NewElementRequestBody
	UpdateElementRequestBody        = egeriapkg.UpdateElementRequestBody
	NewRelationshipRequestBody      = egeriapkg.NewRelationshipRequestBody
	UpdateRelationshipRequestBody   = egeriapkg.UpdateRelationshipRequestBody
	DeleteElementRequestBody        = egeriapkg.DeleteElementRequestBody
	DeleteRelationshipRequestBody   = egeriapkg.DeleteRelationshipRequestBody
	NewClassificationRequestBody    = egeriapkg.NewClassificationRequestBody
	DeleteClassificationRequestBody = egeriapkg.DeleteClassificationRequestBody
	NewAttachmentRequestBody        = egeriapkg.NewAttachmentRequestBody
	SearchStringRequestBody         = egeriapkg.SearchStringRequestBody
	FilterRequestBody               = egeriapkg.FilterRequestBody
	ResultsRequestBody              = egeriapkg.ResultsRequestBody
	GetRequestBody                  = egeriapkg.GetRequestBody
	TemplateRequestBody             = egeriapkg.TemplateRequestBody
	UpdateStatusRequestBody         = egeriapkg.UpdateStatusRequestBody
	FindPropertyNamesRequestBody    = egeriapkg.FindPropertyNamesRequestBody
	ActionRequestBody               = egeriapkg.ActionRequestBody
	ActionTarget                    = egeriapkg.ActionTarget
	Effectivity                     = egeriapkg.Effectivity
	Paging                          = egeriapkg.Paging
)

var (
	BodyNames  = egeriapkg.BodyNames
	BodySchema = egeriapkg.BodySchema
)

// Element properties
type (
	// Properties is implemented by every typed property bag
	Properties = egeriapkg.Properties

	// RawProperties sends an untyped property map with an explicit class
	RawProperties = egeriapkg.RawProperties

	ReferenceableProperties            = egeriapkg.ReferenceableProperties
	CollectionProperties               = egeriapkg.CollectionProperties
	CollectionMembershipProperties     = egeriapkg.CollectionMembershipProperties
	DigitalProductProperties           = egeriapkg.DigitalProductProperties
	GlossaryProperties                 = egeriapkg.GlossaryProperties
	GlossaryTermProperties             = egeriapkg.GlossaryTermProperties
	RelatedTermProperties              = egeriapkg.RelatedTermProperties
	ActorProfileProperties             = egeriapkg.ActorProfileProperties
	UserIdentityProperties             = egeriapkg.UserIdentityProperties
	ActorRoleProperties                = egeriapkg.ActorRoleProperties
	ToDoProperties                     = egeriapkg.ToDoProperties
	GovernanceDefinitionProperties     = egeriapkg.GovernanceDefinitionProperties
	ProjectProperties                  = egeriapkg.ProjectProperties
	AssignmentProperties               = egeriapkg.AssignmentProperties
	DependencyProperties               = egeriapkg.DependencyProperties
	CommentProperties                  = egeriapkg.CommentProperties
	RatingProperties                   = egeriapkg.RatingProperties
	LikeProperties                     = egeriapkg.LikeProperties
	InformalTagProperties              = egeriapkg.InformalTagProperties
	LineageProperties                  = egeriapkg.LineageProperties
	DataStructureProperties            = egeriapkg.DataStructureProperties
	DataFieldProperties                = egeriapkg.DataFieldProperties
	DataClassProperties                = egeriapkg.DataClassProperties
	InformationSupplyChainProperties   = egeriapkg.InformationSupplyChainProperties
	SolutionBlueprintProperties        = egeriapkg.SolutionBlueprintProperties
	SolutionComponentProperties        = egeriapkg.SolutionComponentProperties
	ValidMetadataValue                 = egeriapkg.ValidMetadataValue
	GovernanceClassificationProperties = egeriapkg.GovernanceClassificationProperties
	SecurityTagsProperties             = egeriapkg.SecurityTagsProperties
	OwnershipProperties                = egeriapkg.OwnershipProperties
)

// Output formatting
type (
	// OutputFormat selects how Render presents elements
	OutputFormat = egeriapkg.OutputFormat

	// Column selects one value of an element for tabular formats
	Column = egeriapkg.Column
)

const (
	FormatJSON    = egeriapkg.FormatJSON
	FormatDict    = egeriapkg.FormatDict
	FormatList    = egeriapkg.FormatList
	FormatMD      = egeriapkg.FormatMD
	FormatMDTable = egeriapkg.FormatMDTable
	FormatMermaid = egeriapkg.FormatMermaid
	FormatTable   = egeriapkg.FormatTable
	FormatYAML    = egeriapkg.FormatYAML
	FormatReport  = egeriapkg.FormatReport
)

// Default columns per element kind
var (
	DefaultColumns              = egeriapkg.DefaultColumns
	CollectionColumns           = egeriapkg.CollectionColumns
	GlossaryColumns             = egeriapkg.GlossaryColumns
	TermColumns                 = egeriapkg.TermColumns
	DigitalProductColumns       = egeriapkg.DigitalProductColumns
	ActorProfileColumns         = egeriapkg.ActorProfileColumns
	ToDoColumns                 = egeriapkg.ToDoColumns
	GovernanceDefinitionColumns = egeriapkg.GovernanceDefinitionColumns
	ProjectColumns              = egeriapkg.ProjectColumns
	CommentColumns              = egeriapkg.CommentColumns
	TagColumns                  = egeriapkg.TagColumns
	TechnologyTypeColumns       = egeriapkg.TechnologyTypeColumns
	EngineActionColumns         = egeriapkg.EngineActionColumns
	DataFieldColumns            = egeriapkg.DataFieldColumns
	SolutionComponentColumns    = egeriapkg.SolutionComponentColumns
	ServerColumns               = egeriapkg.ServerColumns
	ValidValueColumns           = egeriapkg.ValidValueColumns
)

var (
	Render            = egeriapkg.Render
	ToDicts           = egeriapkg.ToDicts
	ParseOutputFormat = egeriapkg.ParseOutputFormat
	OutputFormats     = egeriapkg.OutputFormats
)

// Collection helpers
var (
	AddAllToCollection      = egeriapkg.AddAllToCollection
	RemoveAllFromCollection = egeriapkg.RemoveAllFromCollection
	CopyCollectionMembers   = egeriapkg.CopyCollectionMembers
	MoveCollectionMembers   = egeriapkg.MoveCollectionMembers
	AllCollectionMembers    = egeriapkg.AllCollectionMembers
)
