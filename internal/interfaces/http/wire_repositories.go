package http

import (
	"github.com/camber-app/camber/internal/domain/buildlist"
	"github.com/camber-app/camber/internal/domain/car"
	"github.com/camber-app/camber/internal/domain/moderation"
	"github.com/camber-app/camber/internal/domain/part"
	"github.com/camber-app/camber/internal/domain/subscription"
	"github.com/camber-app/camber/internal/domain/user"
	"github.com/camber-app/camber/internal/infrastructure/repository"
)

type repositories struct {
	user         user.Repository
	car          car.Repository
	buildList    buildlist.Repository
	part         part.Repository
	vote         moderation.VoteRepository
	report       moderation.ReportRepository
	plan         subscription.PlanRepository
	subscription subscription.Repository
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		user:         repository.NewUserRepository(c.db, c.log),
		car:          repository.NewCarRepository(c.db, c.log),
		buildList:    repository.NewBuildListRepository(c.db, c.log),
		part:         repository.NewPartRepository(c.db, c.log),
		vote:         repository.NewVoteRepository(c.db, c.log),
		report:       repository.NewReportRepository(c.db, c.log),
		plan:         repository.NewPlanRepository(c.db, c.log),
		subscription: repository.NewSubscriptionRepository(c.db, c.log),
	}
}
