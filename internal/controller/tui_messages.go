package controller

import m "tighten.dev/pkg/tighten/internal/model"

// Message types.
type campaignInfoMsg struct {
	info CampaignInfo
}

type iterationStartMsg struct {
	number int
	size   int
}

type iterationMsg struct {
	iteration m.Iteration
}

type outputLineMsg struct {
	line string
}
