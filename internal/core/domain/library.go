package domain

// ImplementationGoal is one entry of the implementation library.
type ImplementationGoal struct {
	GoalName string `json:"goalName" validate:"required"`
	UseCase  string `json:"useCase"  validate:"required"`
	Example  string `json:"example"  validate:"required"`
}

// ImplementationLibrary holds the current and future goal sequences in order.
type ImplementationLibrary struct {
	Goals       []ImplementationGoal `json:"goals"`
	FutureGoals []ImplementationGoal `json:"futureGoals"`
}

// FuturePlaceholders are shown while the backend has no future goals.
var FuturePlaceholders = []ImplementationGoal{
	{
		GoalName: "Advanced Analytics Integration",
		UseCase:  "Coming soon: Real-time data visualization and predictive analytics for business intelligence",
		Example:  "Stay tuned for implementation patterns leveraging machine learning pipelines and interactive dashboards",
	},
	{
		GoalName: "Distributed System Orchestration",
		UseCase:  "Coming soon: Scalable microservices architecture with automated deployment and monitoring",
		Example:  "Future examples will demonstrate containerization, service mesh patterns, and cloud-native strategies",
	},
}
