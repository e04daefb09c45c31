package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/teamfolio/portfolio-api/internal/api/metrics"
	"github.com/teamfolio/portfolio-api/internal/core/authz"
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

// PostService implements blog use cases on top of the authorization policy
// and the post visibility filter.
type PostService struct {
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, logger: logger}
}

func (s *PostService) Create(ctx context.Context, actor authz.Actor, input ports.CreatePostInput) (*domain.Post, error) {
	if d := authz.CanCreate(actor); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("post", "create").Inc()
		return nil, d.Err(actor)
	}

	published := true
	if input.Published != nil {
		published = *input.Published
	}

	now := time.Now().UTC()
	post := &domain.Post{
		AuthorID:   actor.ID,
		Title:      input.Title,
		Content:    input.Content,
		CoverImage: input.CoverImage,
		Tags:       input.Tags,
		Published:  published,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create post")
		return nil, err
	}

	metrics.PostsCreatedTotal.Inc()
	s.logger.Info().Int64("post_id", created.ID).Int64("author_id", actor.ID).Msg("post created")
	return created, nil
}

// Get returns a single post. Unpublished posts the actor may not see answer
// as not found so their existence stays hidden.
func (s *PostService) Get(ctx context.Context, actor authz.Actor, id int64) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanViewPost(actor, post) {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (s *PostService) List(ctx context.Context, actor authz.Actor) ([]*domain.Post, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}
	return authz.VisiblePosts(actor, posts), nil
}

func (s *PostService) Update(ctx context.Context, actor authz.Actor, id int64, input ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.modifiablePost(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.CoverImage != nil {
		post.CoverImage = *input.CoverImage
	}
	if input.Tags != nil {
		post.Tags = *input.Tags
	}
	if input.Published != nil {
		post.Published = *input.Published
	}
	post.UpdatedAt = time.Now().UTC()

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Delete(ctx context.Context, actor authz.Actor, id int64) error {
	post, err := s.modifiablePost(ctx, actor, id)
	if err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, post.ID); err != nil {
		return err
	}
	s.logger.Info().Int64("post_id", id).Int64("actor_id", actor.ID).Msg("post deleted")
	return nil
}

func (s *PostService) TogglePublish(ctx context.Context, actor authz.Actor, id int64) (*domain.Post, error) {
	post, err := s.modifiablePost(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	post.Published = !post.Published
	post.UpdatedAt = time.Now().UTC()
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *PostService) Search(ctx context.Context, actor authz.Actor, query string) ([]*domain.Post, error) {
	posts, err := s.posts.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return authz.VisiblePosts(actor, posts), nil
}

// modifiablePost loads a post and checks update/delete rights. A post the
// actor cannot even see answers as not found; a visible post the actor may
// not touch answers as forbidden.
func (s *PostService) modifiablePost(ctx context.Context, actor authz.Actor, id int64) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanViewPost(actor, post) {
		return nil, domain.ErrPostNotFound
	}
	if d := authz.CanModify(actor, post); !d.Allowed {
		metrics.AuthzDenialsTotal.WithLabelValues("post", "update").Inc()
		return nil, d.Err(actor)
	}
	return post, nil
}
