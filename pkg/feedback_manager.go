package egeria

import (
	"context"

	"github.com/google/uuid"
)

const feedbackManagerService = "feedback-manager"

func init() {
	register(feedbackManagerService, "Feedback Manager",
		"Comments, likes, ratings and informal tags on any element.",
		TierTech, NewFeedbackManager)
}

// CommentColumns are the default output columns for comments
var CommentColumns = []Column{
	{Name: "Comment", Key: "text"},
	{Name: "Type", Key: "commentType"},
	{Name: "GUID", Key: "guid"},
}

// TagColumns are the default output columns for informal tags
var TagColumns = []Column{
	{Name: "Tag", Key: "displayName"},
	{Name: "Description", Key: "description"},
	{Name: "GUID", Key: "guid"},
}

// FeedbackManager wraps the Feedback Manager view service
type FeedbackManager struct {
	viewService
}

// NewFeedbackManager creates the facade on a shared client
func NewFeedbackManager(client *ServerClient) *FeedbackManager {
	return &FeedbackManager{viewService: newViewService(client, feedbackManagerService)}
}

// AddComment attaches a comment to an element and returns the comment's
// GUID. A missing qualified name is generated.
func (m *FeedbackManager) AddComment(ctx context.Context, elementGUID string, props CommentProperties) (string, error) {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return "", err
	}
	if props.QualifiedName == "" {
		props.QualifiedName = "Comment::" + uuid.NewString()
	}
	return m.client.postForGUID(ctx, m.url("elements", elementGUID, "comments"), NewAttachmentRequestBody{Properties: props})
}

// UpdateComment edits a comment. With merge only the set properties change.
func (m *FeedbackManager) UpdateComment(ctx context.Context, commentGUID string, props CommentProperties, merge bool) error {
	return m.update(ctx, "comments", commentGUID, UpdateElementRequestBody{MergeUpdate: merge, Properties: props})
}

// RemoveComment deletes a comment
func (m *FeedbackManager) RemoveComment(ctx context.Context, commentGUID string) error {
	if err := requireGUID("comment guid", commentGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("comments", commentGUID, "remove"), DeleteElementRequestBody{})
}

// GetAttachedComments returns the comments on an element
func (m *FeedbackManager) GetAttachedComments(ctx context.Context, elementGUID string, opts SearchOptions) ([]Element, error) {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return nil, err
	}
	return m.client.postForElements(ctx, m.url("elements", elementGUID, "comments", "retrieve"), opts.resultsBody())
}

// AddLike records that the calling user likes an element
func (m *FeedbackManager) AddLike(ctx context.Context, elementGUID string, props LikeProperties) error {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("elements", elementGUID, "likes"), NewAttachmentRequestBody{Properties: props})
}

// RemoveLike withdraws the calling user's like
func (m *FeedbackManager) RemoveLike(ctx context.Context, elementGUID string) error {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("elements", elementGUID, "likes", "remove"), nil)
}

// AddRating records the calling user's star rating. A second call replaces
// the first.
func (m *FeedbackManager) AddRating(ctx context.Context, elementGUID string, props RatingProperties) error {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("elements", elementGUID, "ratings"), NewAttachmentRequestBody{Properties: props})
}

// RemoveRating withdraws the calling user's rating
func (m *FeedbackManager) RemoveRating(ctx context.Context, elementGUID string) error {
	if err := requireGUID("element guid", elementGUID); err != nil {
		return err
	}
	return m.client.postNoResult(ctx, m.url("elements", elementGUID, "ratings", "remove"), nil)
}

// CreateInformalTag creates a tag that can then be attached to elements
func (m *FeedbackManager) CreateInformalTag(ctx context.Context, props InformalTagProperties) (string, error) {
	return m.client.postForGUID(ctx, m.url("tags"), NewAttachmentRequestBody{Properties: props})
}

// FindTags returns the informal tags matching search
func (m *FeedbackManager) FindTags(ctx context.Context, search string, opts SearchOptions) ([]Element, error) {
	return m.find(ctx, "tags", search, opts)
}

// AddTagToElement attaches an existing tag to an element
func (m *FeedbackManager) AddTagToElement(ctx context.Context, elementGUID, tagGUID string) error {
	if err := requireGUIDs("element guid", elementGUID, "tag guid", tagGUID); err != nil {
		return err
	}
	return m.link(ctx, NewRelationshipRequestBody{}, "elements", elementGUID, "tags", tagGUID)
}

// RemoveTagFromElement detaches a tag; the tag itself is kept
func (m *FeedbackManager) RemoveTagFromElement(ctx context.Context, elementGUID, tagGUID string) error {
	if err := requireGUIDs("element guid", elementGUID, "tag guid", tagGUID); err != nil {
		return err
	}
	return m.detach(ctx, DeleteRelationshipRequestBody{}, "elements", elementGUID, "tags", tagGUID)
}
