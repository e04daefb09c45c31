package handler

import (
	"github.com/teamfolio/portfolio-api/internal/core/domain"
	"github.com/teamfolio/portfolio-api/internal/core/ports"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:           u.ID,
		Username:     u.Username,
		Email:        u.Email,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		FullName:     u.FullName(),
		Role:         string(u.Role),
		Bio:          u.Bio,
		Skills:       u.Skills,
		SkillsList:   u.SkillsList(),
		ProfilePhoto: u.ProfilePhoto,
		GitHubURL:    u.GitHubURL,
		LinkedInURL:  u.LinkedInURL,
		Website:      u.Website,
		Active:       u.Active,
		CreatedAt:    u.CreatedAt.UTC(),
	}
}

func toListUsersResponse(users []*domain.User) listUsersResponse {
	items := make([]userResponse, len(users))
	for i, u := range users {
		items[i] = toUserResponse(u)
	}
	return listUsersResponse{Data: items}
}

func toAuthResponse(u *domain.User, pair *ports.TokenPair, message string) authResponse {
	return authResponse{
		User:    toUserResponse(u),
		Tokens:  tokensResponse{Access: pair.Access, Refresh: pair.Refresh},
		Message: message,
	}
}

func toPostResponse(p *domain.Post) postResponse {
	return postResponse{
		ID:         p.ID,
		Title:      p.Title,
		Content:    p.Content,
		CoverImage: p.CoverImage,
		Tags:       p.Tags,
		TagsList:   p.TagsList(),
		Published:  p.Published,
		AuthorID:   p.AuthorID,
		CreatedAt:  p.CreatedAt.UTC(),
		UpdatedAt:  p.UpdatedAt.UTC(),
	}
}

func toPostSummaryResponse(p *domain.Post) postSummaryResponse {
	return postSummaryResponse{
		ID:         p.ID,
		Title:      p.Title,
		Excerpt:    p.Excerpt(),
		CoverImage: p.CoverImage,
		TagsList:   p.TagsList(),
		Published:  p.Published,
		AuthorID:   p.AuthorID,
		CreatedAt:  p.CreatedAt.UTC(),
	}
}

func toListPostsResponse(posts []*domain.Post) listPostsResponse {
	items := make([]postSummaryResponse, len(posts))
	for i, p := range posts {
		items[i] = toPostSummaryResponse(p)
	}
	return listPostsResponse{Data: items}
}

func toProjectResponse(p *domain.Project) projectResponse {
	return projectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		TechStack:     p.TechStack,
		TechStackList: p.TechStackList(),
		DemoLink:      p.DemoLink,
		SourceCode:    p.SourceCode,
		Image:         p.Image,
		OwnerID:       p.UserID,
		CreatedAt:     p.CreatedAt.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
}

func toListProjectsResponse(projects []*domain.Project) listProjectsResponse {
	items := make([]projectResponse, len(projects))
	for i, p := range projects {
		items[i] = toProjectResponse(p)
	}
	return listProjectsResponse{Data: items}
}

// --- HTTP request → service input ---

func toUpdateProfileInput(req updateProfileRequest) ports.UpdateProfileInput {
	return ports.UpdateProfileInput{
		Username:     req.Username,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Bio:          req.Bio,
		Skills:       req.Skills,
		ProfilePhoto: req.ProfilePhoto,
		LinkedInURL:  req.LinkedInURL,
		GitHubURL:    req.GitHubURL,
		Website:      req.Website,
		Role:         req.Role,
	}
}

func toCreatePostInput(req createPostRequest) ports.CreatePostInput {
	return ports.CreatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Tags:       req.Tags,
		Published:  req.Published,
	}
}

func toUpdatePostInput(req updatePostRequest) ports.UpdatePostInput {
	return ports.UpdatePostInput{
		Title:      req.Title,
		Content:    req.Content,
		CoverImage: req.CoverImage,
		Tags:       req.Tags,
		Published:  req.Published,
	}
}

func toCreateProjectInput(req createProjectRequest) ports.CreateProjectInput {
	return ports.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		DemoLink:    req.DemoLink,
		SourceCode:  req.SourceCode,
		Image:       req.Image,
	}
}

func toUpdateProjectInput(req updateProjectRequest) ports.UpdateProjectInput {
	return ports.UpdateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		TechStack:   req.TechStack,
		DemoLink:    req.DemoLink,
		SourceCode:  req.SourceCode,
		Image:       req.Image,
	}
}
