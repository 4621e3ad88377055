package egeria

import (
	"encoding/json"
	"maps"
	"time"
)

// ReferenceableProperties are shared by every element with a qualified name
type ReferenceableProperties struct {
	QualifiedName        string            `json:"qualifiedName,omitempty" validate:"required"`
	TypeName             string            `json:"typeName,omitempty"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
	ExtendedProperties   map[string]any    `json:"extendedProperties,omitempty"`
	EffectiveFrom        *time.Time        `json:"effectiveFrom,omitempty"`
	EffectiveTo          *time.Time        `json:"effectiveTo,omitempty"`
}

// RawProperties sends an arbitrary property class. Use it for element types
// this package has no typed model for.
type RawProperties struct {
	Class  string
	Values map[string]any
}

func (p RawProperties) PropertiesClass() string { return p.Class }

func (p RawProperties) MarshalJSON() ([]byte, error) {
	out := maps.Clone(p.Values)
	if out == nil {
		out = map[string]any{}
	}
	if p.Class != "" {
		out["class"] = p.Class
	}
	return json.Marshal(out)
}

// CollectionProperties describe a collection (folder, catalog, product list)
type CollectionProperties struct {
	ReferenceableProperties
	DisplayName string `json:"displayName,omitempty"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`
}

func (CollectionProperties) PropertiesClass() string { return "CollectionProperties" }

func (p CollectionProperties) MarshalJSON() ([]byte, error) {
	type plain CollectionProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// DigitalProductProperties describe a digital product
type DigitalProductProperties struct {
	ReferenceableProperties
	DisplayName      string     `json:"displayName,omitempty"`
	Description      string     `json:"description,omitempty"`
	Category         string     `json:"category,omitempty"`
	ProductName      string     `json:"productName" validate:"required"`
	ProductType      string     `json:"productType,omitempty"`
	IdentifiedName   string     `json:"identifier,omitempty"`
	Maturity         string     `json:"maturity,omitempty"`
	ServiceLife      string     `json:"serviceLife,omitempty"`
	IntroductionDate *time.Time `json:"introductionDate,omitempty"`
	NextVersionDate  *time.Time `json:"nextVersionDate,omitempty"`
	WithdrawDate     *time.Time `json:"withdrawDate,omitempty"`
	CurrentVersion   string     `json:"currentVersion,omitempty"`
	ProductStatus    string     `json:"productStatus,omitempty"`
}

func (DigitalProductProperties) PropertiesClass() string { return "DigitalProductProperties" }

func (p DigitalProductProperties) MarshalJSON() ([]byte, error) {
	type plain DigitalProductProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// CollectionMembershipProperties describe why an element is in a collection
type CollectionMembershipProperties struct {
	MembershipRationale string `json:"membershipRationale,omitempty"`
	Expression          string `json:"expression,omitempty"`
	Confidence          int    `json:"confidence,omitempty" validate:"gte=0,lte=100"`
	MembershipStatus    string `json:"membershipStatus,omitempty"`
	UserDefinedStatus   string `json:"userDefinedStatus,omitempty"`
	Steward             string `json:"steward,omitempty"`
	StewardTypeName     string `json:"stewardTypeName,omitempty"`
	StewardPropertyName string `json:"stewardPropertyName,omitempty"`
	Source              string `json:"source,omitempty"`
	Notes               string `json:"notes,omitempty"`
}

func (CollectionMembershipProperties) PropertiesClass() string {
	return "CollectionMembershipProperties"
}

func (p CollectionMembershipProperties) MarshalJSON() ([]byte, error) {
	type plain CollectionMembershipProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// GlossaryProperties describe a glossary
type GlossaryProperties struct {
	ReferenceableProperties
	DisplayName string `json:"displayName" validate:"required"`
	Description string `json:"description,omitempty"`
	Language    string `json:"language,omitempty"`
	Usage       string `json:"usage,omitempty"`
}

func (GlossaryProperties) PropertiesClass() string { return "GlossaryProperties" }

func (p GlossaryProperties) MarshalJSON() ([]byte, error) {
	type plain GlossaryProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// GlossaryTermProperties describe a glossary term
type GlossaryTermProperties struct {
	ReferenceableProperties
	DisplayName  string   `json:"displayName" validate:"required"`
	Aliases      []string `json:"aliases,omitempty"`
	Summary      string   `json:"summary,omitempty"`
	Description  string   `json:"description,omitempty"`
	Examples     string   `json:"examples,omitempty"`
	Abbreviation string   `json:"abbreviation,omitempty"`
	Usage        string   `json:"usage,omitempty"`
}

func (GlossaryTermProperties) PropertiesClass() string { return "GlossaryTermProperties" }

func (p GlossaryTermProperties) MarshalJSON() ([]byte, error) {
	type plain GlossaryTermProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// RelatedTermProperties qualify a term-to-term relationship
type RelatedTermProperties struct {
	Description string `json:"description,omitempty"`
	Expression  string `json:"expression,omitempty"`
	Status      string `json:"status,omitempty"`
	Steward     string `json:"steward,omitempty"`
	Source      string `json:"source,omitempty"`
	Confidence  int    `json:"confidence,omitempty" validate:"gte=0,lte=100"`
}

func (RelatedTermProperties) PropertiesClass() string { return "GlossaryTermRelationship" }

func (p RelatedTermProperties) MarshalJSON() ([]byte, error) {
	type plain RelatedTermProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// ActorProfileProperties describe a person, team or IT profile
type ActorProfileProperties struct {
	ReferenceableProperties
	DisplayName string `json:"displayName" validate:"required"`
	Description string `json:"description,omitempty"`
}

func (ActorProfileProperties) PropertiesClass() string { return "ActorProfileProperties" }

func (p ActorProfileProperties) MarshalJSON() ([]byte, error) {
	type plain ActorProfileProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// UserIdentityProperties describe a security account identity
type UserIdentityProperties struct {
	ReferenceableProperties
	UserID            string `json:"userId" validate:"required"`
	DistinguishedName string `json:"distinguishedName,omitempty"`
}

func (UserIdentityProperties) PropertiesClass() string { return "UserIdentityProperties" }

func (p UserIdentityProperties) MarshalJSON() ([]byte, error) {
	type plain UserIdentityProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// ActorRoleProperties describe a role (for example a project lead)
type ActorRoleProperties struct {
	ReferenceableProperties
	DisplayName string `json:"displayName" validate:"required"`
	Description string `json:"description,omitempty"`
	Identifier  string `json:"identifier,omitempty"`
	Scope       string `json:"scope,omitempty"`
	DomainID    int    `json:"domainIdentifier,omitempty"`
}

func (ActorRoleProperties) PropertiesClass() string { return "ActorRoleProperties" }

func (p ActorRoleProperties) MarshalJSON() ([]byte, error) {
	type plain ActorRoleProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// ToDoProperties describe an action item for a person
type ToDoProperties struct {
	ReferenceableProperties
	Name           string     `json:"name" validate:"required"`
	Description    string     `json:"description,omitempty"`
	ToDoType       string     `json:"toDoType,omitempty"`
	Priority       int        `json:"priority,omitempty"`
	DueTime        *time.Time `json:"dueTime,omitempty"`
	Status         string     `json:"toDoStatus,omitempty"`
	LastReviewTime *time.Time `json:"lastReviewTime,omitempty"`
}

func (ToDoProperties) PropertiesClass() string { return "ToDoProperties" }

func (p ToDoProperties) MarshalJSON() ([]byte, error) {
	type plain ToDoProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// GovernanceDefinitionProperties describe policies, principles, regulations,
// rules and the other governance definition subtypes (set TypeName).
type GovernanceDefinitionProperties struct {
	ReferenceableProperties
	Title              string   `json:"title" validate:"required"`
	Summary            string   `json:"summary,omitempty"`
	Description        string   `json:"description,omitempty"`
	Scope              string   `json:"scope,omitempty"`
	DomainIdentifier   int      `json:"domainIdentifier,omitempty"`
	Importance         string   `json:"importance,omitempty"`
	Implications       []string `json:"implications,omitempty"`
	Outcomes           []string `json:"outcomes,omitempty"`
	Results            []string `json:"results,omitempty"`
	DocumentIdentifier string   `json:"documentIdentifier,omitempty"`
}

func (GovernanceDefinitionProperties) PropertiesClass() string {
	return "GovernanceDefinitionProperties"
}

func (p GovernanceDefinitionProperties) MarshalJSON() ([]byte, error) {
	type plain GovernanceDefinitionProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// ProjectProperties describe a project, campaign or task
type ProjectProperties struct {
	ReferenceableProperties
	Identifier     string     `json:"identifier,omitempty"`
	DisplayName    string     `json:"displayName" validate:"required"`
	Description    string     `json:"description,omitempty"`
	ProjectStatus  string     `json:"projectStatus,omitempty"`
	ProjectPhase   string     `json:"projectPhase,omitempty"`
	ProjectHealth  string     `json:"projectHealth,omitempty"`
	Priority       int        `json:"priority,omitempty"`
	StartDate      *time.Time `json:"startDate,omitempty"`
	PlannedEndDate *time.Time `json:"plannedEndDate,omitempty"`
}

func (ProjectProperties) PropertiesClass() string { return "ProjectProperties" }

func (p ProjectProperties) MarshalJSON() ([]byte, error) {
	type plain ProjectProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// AssignmentProperties qualify a role assignment (team membership,
// product manager, data owner)
type AssignmentProperties struct {
	Role        string `json:"teamRole,omitempty"`
	Description string `json:"description,omitempty"`
}

func (AssignmentProperties) PropertiesClass() string { return "AssignmentScopeProperties" }

func (p AssignmentProperties) MarshalJSON() ([]byte, error) {
	type plain AssignmentProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// DependencyProperties qualify a dependency between projects or products
type DependencyProperties struct {
	DependencySummary string `json:"dependencySummary,omitempty"`
	Description       string `json:"description,omitempty"`
}

func (DependencyProperties) PropertiesClass() string { return "DependencyProperties" }

func (p DependencyProperties) MarshalJSON() ([]byte, error) {
	type plain DependencyProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// CommentProperties describe a comment or a reply
type CommentProperties struct {
	ReferenceableProperties
	Text        string `json:"text" validate:"required"`
	CommentType string `json:"commentType,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

func (CommentProperties) PropertiesClass() string { return "CommentProperties" }

func (p CommentProperties) MarshalJSON() ([]byte, error) {
	type plain CommentProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// RatingProperties hold a star rating (1-5) and review
type RatingProperties struct {
	StarRating int    `json:"starRating" validate:"gte=0,lte=5"`
	Review     string `json:"review,omitempty"`
	IsPublic   bool   `json:"isPublic"`
}

func (RatingProperties) PropertiesClass() string { return "RatingProperties" }

func (p RatingProperties) MarshalJSON() ([]byte, error) {
	type plain RatingProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// LikeProperties record a like
type LikeProperties struct {
	Emoji    string `json:"emoji,omitempty"`
	IsPublic bool   `json:"isPublic"`
}

func (LikeProperties) PropertiesClass() string { return "LikeProperties" }

func (p LikeProperties) MarshalJSON() ([]byte, error) {
	type plain LikeProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// InformalTagProperties describe a user defined tag
type InformalTagProperties struct {
	DisplayName  string `json:"displayName" validate:"required"`
	Description  string `json:"description,omitempty"`
	IsPrivateTag bool   `json:"isPrivateTag"`
}

func (InformalTagProperties) PropertiesClass() string { return "InformalTagProperties" }

func (p InformalTagProperties) MarshalJSON() ([]byte, error) {
	type plain InformalTagProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// LineageProperties qualify data flows, control flows, process calls and
// lineage mappings. The class is chosen by the linking method.
type LineageProperties struct {
	Label             string   `json:"label,omitempty"`
	Description       string   `json:"description,omitempty"`
	Formula           string   `json:"formula,omitempty"`
	FormulaType       string   `json:"formulaType,omitempty"`
	Guard             string   `json:"guard,omitempty"`
	MandatoryGuard    bool     `json:"mandatoryGuard,omitempty"`
	ISCQualifiedNames []string `json:"iscQualifiedNames,omitempty"`

	class string
}

func (p LineageProperties) PropertiesClass() string { return p.class }

func (p LineageProperties) MarshalJSON() ([]byte, error) {
	type plain LineageProperties
	return marshalWithClass(p.class, plain(p))
}

func (p LineageProperties) withClass(class string) LineageProperties {
	p.class = class
	return p
}

// DataStructureProperties describe a data structure (a schema fragment)
type DataStructureProperties struct {
	ReferenceableProperties
	DisplayName       string `json:"displayName" validate:"required"`
	Description       string `json:"description,omitempty"`
	Namespace         string `json:"namespace,omitempty"`
	VersionIdentifier string `json:"versionIdentifier,omitempty"`
}

func (DataStructureProperties) PropertiesClass() string { return "DataStructureProperties" }

func (p DataStructureProperties) MarshalJSON() ([]byte, error) {
	type plain DataStructureProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// DataFieldProperties describe a field within a data structure
type DataFieldProperties struct {
	ReferenceableProperties
	DisplayName   string   `json:"displayName" validate:"required"`
	Namespace     string   `json:"namespace,omitempty"`
	Description   string   `json:"description,omitempty"`
	Aliases       []string `json:"aliases,omitempty"`
	DataType      string   `json:"dataType,omitempty"`
	IsNullable    bool     `json:"isNullable"`
	MinimumLength int      `json:"minimumLength,omitempty"`
	Length        int      `json:"length,omitempty"`
	Precision     int      `json:"precision,omitempty"`
	OrderedValues bool     `json:"orderedValues,omitempty"`
	SortOrder     string   `json:"sortOrder,omitempty"`
	DefaultValue  string   `json:"defaultValue,omitempty"`
}

func (DataFieldProperties) PropertiesClass() string { return "DataFieldProperties" }

func (p DataFieldProperties) MarshalJSON() ([]byte, error) {
	type plain DataFieldProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// DataClassProperties describe a logical data type
type DataClassProperties struct {
	ReferenceableProperties
	DisplayName          string   `json:"displayName" validate:"required"`
	Description          string   `json:"description,omitempty"`
	Namespace            string   `json:"namespace,omitempty"`
	MatchPropertyNames   []string `json:"matchPropertyNames,omitempty"`
	MatchThreshold       int      `json:"matchThreshold,omitempty"`
	SpecificationDetails string   `json:"specificationDetails,omitempty"`
	DataType             string   `json:"dataType,omitempty"`
	IsNullable           bool     `json:"isNullable"`
	IsCaseSensitive      bool     `json:"isCaseSensitive"`
}

func (DataClassProperties) PropertiesClass() string { return "DataClassProperties" }

func (p DataClassProperties) MarshalJSON() ([]byte, error) {
	type plain DataClassProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// InformationSupplyChainProperties describe the flow of information
// between systems
type InformationSupplyChainProperties struct {
	ReferenceableProperties
	DisplayName string   `json:"displayName" validate:"required"`
	Description string   `json:"description,omitempty"`
	Scope       string   `json:"scope,omitempty"`
	Purposes    []string `json:"purposes,omitempty"`
}

func (InformationSupplyChainProperties) PropertiesClass() string {
	return "InformationSupplyChainProperties"
}

func (p InformationSupplyChainProperties) MarshalJSON() ([]byte, error) {
	type plain InformationSupplyChainProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// SolutionBlueprintProperties describe a solution design
type SolutionBlueprintProperties struct {
	ReferenceableProperties
	DisplayName       string `json:"displayName" validate:"required"`
	Description       string `json:"description,omitempty"`
	VersionIdentifier string `json:"versionIdentifier,omitempty"`
}

func (SolutionBlueprintProperties) PropertiesClass() string {
	return "SolutionBlueprintProperties"
}

func (p SolutionBlueprintProperties) MarshalJSON() ([]byte, error) {
	type plain SolutionBlueprintProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// SolutionComponentProperties describe one component of a solution
type SolutionComponentProperties struct {
	ReferenceableProperties
	DisplayName                       string `json:"displayName" validate:"required"`
	Description                       string `json:"description,omitempty"`
	SolutionComponentType             string `json:"solutionComponentType,omitempty"`
	PlannedDeployedImplementationType string `json:"plannedDeployedImplementationType,omitempty"`
	VersionIdentifier                 string `json:"versionIdentifier,omitempty"`
}

func (SolutionComponentProperties) PropertiesClass() string {
	return "SolutionComponentProperties"
}

func (p SolutionComponentProperties) MarshalJSON() ([]byte, error) {
	type plain SolutionComponentProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// ValidMetadataValue is an allowed value for an open metadata property
type ValidMetadataValue struct {
	DisplayName          string            `json:"displayName,omitempty"`
	Description          string            `json:"description,omitempty"`
	PreferredValue       string            `json:"preferredValue" validate:"required"`
	DataType             string            `json:"dataType,omitempty"`
	Scope                string            `json:"scope,omitempty"`
	IsCaseSensitive      bool              `json:"isCaseSensitive"`
	IsDeprecated         bool              `json:"isDeprecated"`
	AdditionalProperties map[string]string `json:"additionalProperties,omitempty"`
}

func (ValidMetadataValue) BodyClass() string { return "ValidMetadataValue" }

func (v ValidMetadataValue) MarshalJSON() ([]byte, error) {
	type plain ValidMetadataValue
	return marshalWithClass(v.BodyClass(), plain(v))
}

// GovernanceClassificationProperties qualify the governance classifications
// (Confidentiality, Criticality, Retention, ...). LevelIdentifier carries the
// level for the ranked classifications.
type GovernanceClassificationProperties struct {
	LevelIdentifier int    `json:"levelIdentifier,omitempty"`
	Status          string `json:"status,omitempty"`
	Confidence      int    `json:"confidence,omitempty" validate:"gte=0,lte=100"`
	Steward         string `json:"steward,omitempty"`
	StewardTypeName string `json:"stewardTypeName,omitempty"`
	Source          string `json:"source,omitempty"`
	Notes           string `json:"notes,omitempty"`

	class string
}

func (p GovernanceClassificationProperties) PropertiesClass() string { return p.class }

func (p GovernanceClassificationProperties) MarshalJSON() ([]byte, error) {
	type plain GovernanceClassificationProperties
	return marshalWithClass(p.class, plain(p))
}

func (p GovernanceClassificationProperties) withClass(class string) GovernanceClassificationProperties {
	p.class = class
	return p
}

// SecurityTagsProperties set labels and properties used by security
// enforcement points.
type SecurityTagsProperties struct {
	SecurityLabels     []string          `json:"securityLabels,omitempty"`
	SecurityProperties map[string]string `json:"securityProperties,omitempty"`
}

func (SecurityTagsProperties) PropertiesClass() string { return "SecurityTagsProperties" }

func (p SecurityTagsProperties) MarshalJSON() ([]byte, error) {
	type plain SecurityTagsProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}

// OwnershipProperties name the owner of an element
type OwnershipProperties struct {
	Owner             string `json:"owner" validate:"required"`
	OwnerTypeName     string `json:"ownerTypeName,omitempty"`
	OwnerPropertyName string `json:"ownerPropertyName,omitempty"`
}

func (OwnershipProperties) PropertiesClass() string { return "OwnershipProperties" }

func (p OwnershipProperties) MarshalJSON() ([]byte, error) {
	type plain OwnershipProperties
	return marshalWithClass(p.PropertiesClass(), plain(p))
}
