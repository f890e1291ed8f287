package http

import (
	"github.com/camber-app/camber/internal/interfaces/http/handlers"
)

type allHandlers struct {
	auth         *handlers.AuthHandler
	user         *handlers.UserHandler
	car          *handlers.CarHandler
	buildList    *handlers.BuildListHandler
	part         *handlers.PartHandler
	moderation   *handlers.ModerationHandler
	subscription *handlers.SubscriptionHandler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		auth: handlers.NewAuthHandler(
			c.ucs.registerUser,
			c.ucs.loginUser,
			c.ucs.refreshToken,
			c.ucs.verifyEmail,
		),
		user: handlers.NewUserHandler(
			c.ucs.getProfile,
			c.ucs.updateProfile,
			c.ucs.listUsers,
			c.ucs.updateUserStatus,
			c.ucs.updateUserRole,
			c.ucs.deleteUser,
		),
		car: handlers.NewCarHandler(
			c.ucs.createCar,
			c.ucs.getCar,
			c.ucs.listCars,
			c.ucs.updateCar,
			c.ucs.deleteCar,
		),
		buildList: handlers.NewBuildListHandler(
			c.ucs.createBuildList,
			c.ucs.getBuildList,
			c.ucs.listBuildLists,
			c.ucs.updateBuildList,
			c.ucs.deleteBuildList,
			c.ucs.addItem,
			c.ucs.removeItem,
		),
		part: handlers.NewPartHandler(
			c.ucs.createPart,
			c.ucs.getPart,
			c.ucs.listParts,
			c.ucs.updatePart,
			c.ucs.deletePart,
		),
		moderation: handlers.NewModerationHandler(
			c.ucs.castVote,
			c.ucs.reportContent,
			c.ucs.listReports,
			c.ucs.resolveReport,
			c.ucs.flaggedContent,
		),
		subscription: handlers.NewSubscriptionHandler(
			c.ucs.listPlans,
			c.ucs.createPlan,
			c.ucs.updatePlan,
			c.ucs.subscribe,
			c.ucs.cancelSubscription,
			c.ucs.getMySubscription,
		),
	}
}
