package services

// ServiceContainer holds all application services.
type ServiceContainer struct {
	AuthService AuthService
	UserService UserService
	JobService  JobService
}
