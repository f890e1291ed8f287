package http

import (
	buildlistUC "github.com/camber-app/camber/internal/application/buildlist/usecases"
	carUC "github.com/camber-app/camber/internal/application/car/usecases"
	moderationUC "github.com/camber-app/camber/internal/application/moderation/usecases"
	partUC "github.com/camber-app/camber/internal/application/part/usecases"
	subscriptionServices "github.com/camber-app/camber/internal/application/subscription/services"
	subscriptionUC "github.com/camber-app/camber/internal/application/subscription/usecases"
	userUC "github.com/camber-app/camber/internal/application/user/usecases"
	"github.com/camber-app/camber/internal/infrastructure/auth"
	"github.com/camber-app/camber/internal/shared/services/markdown"
)

type allUseCases struct {
	// auth
	registerUser *userUC.RegisterUserUseCase
	loginUser    *userUC.LoginUserUseCase
	refreshToken *userUC.RefreshTokenUseCase
	verifyEmail  *userUC.VerifyEmailUseCase

	// users
	getProfile       *userUC.GetProfileUseCase
	updateProfile    *userUC.UpdateProfileUseCase
	listUsers        *userUC.ListUsersUseCase
	updateUserStatus *userUC.UpdateUserStatusUseCase
	updateUserRole   *userUC.UpdateUserRoleUseCase
	deleteUser       *userUC.DeleteUserUseCase

	// cars
	createCar *carUC.CreateCarUseCase
	getCar    *carUC.GetCarUseCase
	listCars  *carUC.ListCarsUseCase
	updateCar *carUC.UpdateCarUseCase
	deleteCar *carUC.DeleteCarUseCase

	// build lists
	createBuildList *buildlistUC.CreateBuildListUseCase
	getBuildList    *buildlistUC.GetBuildListUseCase
	listBuildLists  *buildlistUC.ListBuildListsUseCase
	updateBuildList *buildlistUC.UpdateBuildListUseCase
	deleteBuildList *buildlistUC.DeleteBuildListUseCase
	addItem         *buildlistUC.AddItemUseCase
	removeItem      *buildlistUC.RemoveItemUseCase

	// parts
	createPart *partUC.CreatePartUseCase
	getPart    *partUC.GetPartUseCase
	listParts  *partUC.ListPartsUseCase
	updatePart *partUC.UpdatePartUseCase
	deletePart *partUC.DeletePartUseCase

	// moderation
	castVote       *moderationUC.CastVoteUseCase
	reportContent  *moderationUC.ReportContentUseCase
	listReports    *moderationUC.ListReportsUseCase
	resolveReport  *moderationUC.ResolveReportUseCase
	flaggedContent *moderationUC.FlaggedContentUseCase

	// subscriptions
	listPlans          *subscriptionUC.ListPlansUseCase
	createPlan         *subscriptionUC.CreatePlanUseCase
	updatePlan         *subscriptionUC.UpdatePlanUseCase
	subscribe          *subscriptionUC.SubscribeUseCase
	cancelSubscription *subscriptionUC.CancelSubscriptionUseCase
	getMySubscription  *subscriptionUC.GetMySubscriptionUseCase
}

func (c *Container) initUseCases() {
	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)
	md := markdown.NewService()
	limits := subscriptionServices.NewLimitService(c.repos.subscription, c.repos.plan, c.log)

	c.ucs = &allUseCases{
		registerUser: userUC.NewRegisterUserUseCase(c.repos.user, hasher, c.emailSvc, c.log),
		loginUser:    userUC.NewLoginUserUseCase(c.repos.user, hasher, c.jwtSvc, c.log),
		refreshToken: userUC.NewRefreshTokenUseCase(c.repos.user, c.jwtSvc, c.log),
		verifyEmail:  userUC.NewVerifyEmailUseCase(c.repos.user, c.log),

		getProfile:       userUC.NewGetProfileUseCase(c.repos.user),
		updateProfile:    userUC.NewUpdateProfileUseCase(c.repos.user, c.log),
		listUsers:        userUC.NewListUsersUseCase(c.repos.user),
		updateUserStatus: userUC.NewUpdateUserStatusUseCase(c.repos.user, c.log),
		updateUserRole:   userUC.NewUpdateUserRoleUseCase(c.repos.user, c.log),
		deleteUser:       userUC.NewDeleteUserUseCase(c.repos.user, c.log),

		createCar: carUC.NewCreateCarUseCase(c.repos.car, limits, c.log),
		getCar:    carUC.NewGetCarUseCase(c.repos.car),
		listCars:  carUC.NewListCarsUseCase(c.repos.car),
		updateCar: carUC.NewUpdateCarUseCase(c.repos.car, c.log),
		deleteCar: carUC.NewDeleteCarUseCase(c.repos.car, c.log),

		createBuildList: buildlistUC.NewCreateBuildListUseCase(c.repos.buildList, c.repos.car, limits, md, c.log),
		getBuildList:    buildlistUC.NewGetBuildListUseCase(c.repos.buildList),
		listBuildLists:  buildlistUC.NewListBuildListsUseCase(c.repos.buildList),
		updateBuildList: buildlistUC.NewUpdateBuildListUseCase(c.repos.buildList, md, c.log),
		deleteBuildList: buildlistUC.NewDeleteBuildListUseCase(c.repos.buildList, c.log),
		addItem:         buildlistUC.NewAddItemUseCase(c.repos.buildList, c.repos.part, limits, c.log),
		removeItem:      buildlistUC.NewRemoveItemUseCase(c.repos.buildList, c.log),

		createPart: partUC.NewCreatePartUseCase(c.repos.part, c.log),
		getPart:    partUC.NewGetPartUseCase(c.repos.part, c.repos.vote),
		listParts:  partUC.NewListPartsUseCase(c.repos.part),
		updatePart: partUC.NewUpdatePartUseCase(c.repos.part, c.log),
		deletePart: partUC.NewDeletePartUseCase(c.repos.part, c.log),

		castVote:       moderationUC.NewCastVoteUseCase(c.repos.vote, c.repos.part, c.repos.buildList, c.log),
		reportContent:  moderationUC.NewReportContentUseCase(c.repos.report, c.repos.part, c.repos.buildList, c.log),
		listReports:    moderationUC.NewListReportsUseCase(c.repos.report),
		resolveReport:  moderationUC.NewResolveReportUseCase(c.repos.report, c.log),
		flaggedContent: moderationUC.NewFlaggedContentUseCase(c.repos.report),

		listPlans:          subscriptionUC.NewListPlansUseCase(c.repos.plan),
		createPlan:         subscriptionUC.NewCreatePlanUseCase(c.repos.plan, c.log),
		updatePlan:         subscriptionUC.NewUpdatePlanUseCase(c.repos.plan, c.log),
		subscribe:          subscriptionUC.NewSubscribeUseCase(c.repos.subscription, c.repos.plan, c.log),
		cancelSubscription: subscriptionUC.NewCancelSubscriptionUseCase(c.repos.subscription, c.log),
		getMySubscription:  subscriptionUC.NewGetMySubscriptionUseCase(c.repos.subscription, c.repos.plan, limits),
	}
}
