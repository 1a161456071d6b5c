package config

import (
	"github.com/askiada/gatb-devtools/pkg/pipeline/drawer"
	"github.com/askiada/gatb-devtools/pkg/pipeline/measure"
	"github.com/askiada/gatb-devtools/pkg/pipeline/model"
)

// PipelineOptions returns the options timing and drawing the pipeline when PipelineGraph is set.
func (c Config) PipelineOptions() []model.PipelineOption {
	if c.PipelineGraph == "" {
		return nil
	}

	msr := measure.NewDefaultMeasure()

	return []model.PipelineOption{
		measure.PipelineMeasure(msr),
		drawer.PipelineDrawer(drawer.NewDOTDrawer(c.PipelineGraph), msr),
	}
}
