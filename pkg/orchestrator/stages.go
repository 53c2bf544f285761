package orchestrator

import "github.com/codeready-toolchain/maestro/pkg/models"

// transitions is the canonical stage graph. A successor not listed here is
// a TransitionError; there are no implicit defaults.
var transitions = map[models.Stage][]models.Stage{
	models.StageInterpretation: {models.StageValidatorA},
	models.StageValidatorA:     {models.StageRouting, models.StageInterpretation},
	models.StageRouting:        {models.StagePlanning, models.StageExecution},
	models.StagePlanning:       {models.StageValidatorB},
	models.StageValidatorB:     {models.StageExecution, models.StagePlanning, models.StageReflection},
	models.StageExecution:      {models.StageReflection, models.StagePlanning},
	models.StageReflection:     {models.StageRegistryUpdate},
	models.StageRegistryUpdate: {},
}

// stageRoles maps each stage to the component role used for prompt
// resolution and event attribution. Consumers rely on this mapping.
var stageRoles = map[models.Stage]string{
	models.StageInterpretation: "interpretation",
	models.StageValidatorA:     "semantic_validator",
	models.StageRouting:        "routing",
	models.StagePlanning:       "planning",
	models.StageValidatorB:     "execution_validator",
	models.StageExecution:      "execution",
	models.StageReflection:     "reflection",
	models.StageRegistryUpdate: "registry_update",
}

func canTransition(from, to models.Stage) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
