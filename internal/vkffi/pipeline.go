// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package vkffi

// #include <stdlib.h>
// #include "proc.h"
import "C"

import (
	"unsafe"

	"github.com/gviegas/vkreplay/driverapi"
)

// CreateShaderModule implements driverapi.Table.
func (t *Table) CreateShaderModule(device driverapi.Handle, code []byte) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkShaderModuleCreateInfo{
		sType:    C.VK_STRUCTURE_TYPE_SHADER_MODULE_CREATE_INFO,
		codeSize: C.size_t(len(code)),
	}
	if len(code) > 0 {
		cinfo.pCode = (*C.uint32_t)(unsafe.Pointer(&code[0]))
	}
	var mod C.VkShaderModule
	r := C.vkffiCreateShaderModule(C.VkDevice(toPtr(device)), &cinfo, &mod)
	return fromPtr(unsafe.Pointer(mod)), checkResult(r)
}

// DestroyShaderModule implements driverapi.Table.
func (t *Table) DestroyShaderModule(device, module driverapi.Handle) {
	C.vkffiDestroyShaderModule(C.VkDevice(toPtr(device)), C.VkShaderModule(toPtr(module)))
}

// CreatePipelineLayout implements driverapi.Table.
func (t *Table) CreatePipelineLayout(device driverapi.Handle, info driverapi.PipelineLayoutCreateInfo) (driverapi.Handle, driverapi.Result) {
	sets := make([]C.VkDescriptorSetLayout, len(info.SetLayouts))
	for i, h := range info.SetLayouts {
		sets[i] = C.VkDescriptorSetLayout(toPtr(h))
	}
	cinfo := C.VkPipelineLayoutCreateInfo{sType: C.VK_STRUCTURE_TYPE_PIPELINE_LAYOUT_CREATE_INFO, setLayoutCount: C.uint32_t(len(sets))}
	if len(sets) > 0 {
		cinfo.pSetLayouts = &sets[0]
	}
	var layout C.VkPipelineLayout
	r := C.vkffiCreatePipelineLayout(C.VkDevice(toPtr(device)), &cinfo, &layout)
	return fromPtr(unsafe.Pointer(layout)), checkResult(r)
}

// DestroyPipelineLayout implements driverapi.Table.
func (t *Table) DestroyPipelineLayout(device, layout driverapi.Handle) {
	C.vkffiDestroyPipelineLayout(C.VkDevice(toPtr(device)), C.VkPipelineLayout(toPtr(layout)))
}

// CreatePipelineCache implements driverapi.Table.
func (t *Table) CreatePipelineCache(device driverapi.Handle) (driverapi.Handle, driverapi.Result) {
	cinfo := C.VkPipelineCacheCreateInfo{sType: C.VK_STRUCTURE_TYPE_PIPELINE_CACHE_CREATE_INFO}
	var cache C.VkPipelineCache
	r := C.vkffiCreatePipelineCache(C.VkDevice(toPtr(device)), &cinfo, &cache)
	return fromPtr(unsafe.Pointer(cache)), checkResult(r)
}

// DestroyPipelineCache implements driverapi.Table.
func (t *Table) DestroyPipelineCache(device, cache driverapi.Handle) {
	C.vkffiDestroyPipelineCache(C.VkDevice(toPtr(device)), C.VkPipelineCache(toPtr(cache)))
}

// GetPipelineCacheData implements driverapi.Table.
func (t *Table) GetPipelineCacheData(device, cache driverapi.Handle) ([]byte, driverapi.Result) {
	var n C.size_t
	r := C.vkffiGetPipelineCacheData(C.VkDevice(toPtr(device)), C.VkPipelineCache(toPtr(cache)), &n, nil)
	if checkResult(r) != driverapi.ResultSuccess || n == 0 {
		return nil, checkResult(r)
	}
	data := C.malloc(n)
	defer C.free(data)
	r = C.vkffiGetPipelineCacheData(C.VkDevice(toPtr(device)), C.VkPipelineCache(toPtr(cache)), &n, data)
	if checkResult(r) != driverapi.ResultSuccess {
		return nil, checkResult(r)
	}
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(data), n))
	return out, checkResult(r)
}

func shaderStage(s driverapi.ShaderStage) (C.VkPipelineShaderStageCreateInfo, *C.char) {
	entry := C.CString(s.Entry)
	return C.VkPipelineShaderStageCreateInfo{
		sType:  C.VK_STRUCTURE_TYPE_PIPELINE_SHADER_STAGE_CREATE_INFO,
		stage:  C.VkShaderStageFlagBits(s.Stage),
		module: C.VkShaderModule(toPtr(s.Module)),
		pName:  entry,
	}, entry
}

// CreateGraphicsPipelines implements driverapi.Table.
func (t *Table) CreateGraphicsPipelines(device, cache driverapi.Handle, infos []driverapi.GraphicsPipelineCreateInfo) ([]driverapi.Handle, driverapi.Result) {
	if len(infos) == 0 {
		return nil, driverapi.ResultSuccess
	}
	cinfos := make([]C.VkGraphicsPipelineCreateInfo, len(infos))
	var entries []*C.char
	for i, info := range infos {
		stages := make([]C.VkPipelineShaderStageCreateInfo, len(info.Stages))
		for j, s := range info.Stages {
			st, entry := shaderStage(s)
			stages[j] = st
			entries = append(entries, entry)
		}
		vp := C.VkPipelineViewportStateCreateInfo{
			sType:         C.VK_STRUCTURE_TYPE_PIPELINE_VIEWPORT_STATE_CREATE_INFO,
			viewportCount: C.uint32_t(info.ViewportCount),
			scissorCount:  C.uint32_t(info.ScissorCount),
		}
		vi := C.VkPipelineVertexInputStateCreateInfo{sType: C.VK_STRUCTURE_TYPE_PIPELINE_VERTEX_INPUT_STATE_CREATE_INFO}
		ia := C.VkPipelineInputAssemblyStateCreateInfo{
			sType:    C.VK_STRUCTURE_TYPE_PIPELINE_INPUT_ASSEMBLY_STATE_CREATE_INFO,
			topology: C.VK_PRIMITIVE_TOPOLOGY_TRIANGLE_LIST,
		}
		rs := C.VkPipelineRasterizationStateCreateInfo{
			sType:       C.VK_STRUCTURE_TYPE_PIPELINE_RASTERIZATION_STATE_CREATE_INFO,
			polygonMode: C.VK_POLYGON_MODE_FILL,
			cullMode:    C.VK_CULL_MODE_NONE,
			frontFace:   C.VK_FRONT_FACE_COUNTER_CLOCKWISE,
			lineWidth:   1,
		}
		ms := C.VkPipelineMultisampleStateCreateInfo{
			sType:                C.VK_STRUCTURE_TYPE_PIPELINE_MULTISAMPLE_STATE_CREATE_INFO,
			rasterizationSamples: C.VK_SAMPLE_COUNT_1_BIT,
		}
		cbs := C.VkPipelineColorBlendStateCreateInfo{sType: C.VK_STRUCTURE_TYPE_PIPELINE_COLOR_BLEND_STATE_CREATE_INFO}
		cinfo := C.VkGraphicsPipelineCreateInfo{
			sType:              C.VK_STRUCTURE_TYPE_GRAPHICS_PIPELINE_CREATE_INFO,
			stageCount:         C.uint32_t(len(stages)),
			pVertexInputState:   &vi,
			pInputAssemblyState: &ia,
			pViewportState:      &vp,
			pRasterizationState: &rs,
			pMultisampleState:   &ms,
			pColorBlendState:    &cbs,
			layout:             C.VkPipelineLayout(toPtr(info.Layout)),
			renderPass:         C.VkRenderPass(toPtr(info.RenderPass)),
			subpass:            C.uint32_t(info.Subpass),
			basePipelineHandle: C.VkPipeline(toPtr(info.BasePipelineHandle)),
			basePipelineIndex:  C.int32_t(info.BasePipelineIndex),
		}
		if len(stages) > 0 {
			cinfo.pStages = &stages[0]
		}
		cinfos[i] = cinfo
	}
	defer func() {
		for _, e := range entries {
			C.free(unsafe.Pointer(e))
		}
	}()
	pipelines := make([]C.VkPipeline, len(infos))
	r := C.vkffiCreateGraphicsPipelines(C.VkDevice(toPtr(device)), C.VkPipelineCache(toPtr(cache)), C.uint32_t(len(cinfos)), &cinfos[0], &pipelines[0])
	out := make([]driverapi.Handle, len(pipelines))
	for i, p := range pipelines {
		out[i] = fromPtr(unsafe.Pointer(p))
	}
	return out, checkResult(r)
}

// CreateComputePipelines implements driverapi.Table.
func (t *Table) CreateComputePipelines(device, cache driverapi.Handle, infos []driverapi.ComputePipelineCreateInfo) ([]driverapi.Handle, driverapi.Result) {
	if len(infos) == 0 {
		return nil, driverapi.ResultSuccess
	}
	cinfos := make([]C.VkComputePipelineCreateInfo, len(infos))
	var entries []*C.char
	for i, info := range infos {
		st, entry := shaderStage(info.Stage)
		entries = append(entries, entry)
		cinfos[i] = C.VkComputePipelineCreateInfo{
			sType:              C.VK_STRUCTURE_TYPE_COMPUTE_PIPELINE_CREATE_INFO,
			stage:              st,
			layout:             C.VkPipelineLayout(toPtr(info.Layout)),
			basePipelineHandle: C.VkPipeline(toPtr(info.BasePipelineHandle)),
			basePipelineIndex:  C.int32_t(info.BasePipelineIndex),
		}
	}
	defer func() {
		for _, e := range entries {
			C.free(unsafe.Pointer(e))
		}
	}()
	pipelines := make([]C.VkPipeline, len(infos))
	r := C.vkffiCreateComputePipelines(C.VkDevice(toPtr(device)), C.VkPipelineCache(toPtr(cache)), C.uint32_t(len(cinfos)), &cinfos[0], &pipelines[0])
	out := make([]driverapi.Handle, len(pipelines))
	for i, p := range pipelines {
		out[i] = fromPtr(unsafe.Pointer(p))
	}
	return out, checkResult(r)
}

// DestroyPipeline implements driverapi.Table.
func (t *Table) DestroyPipeline(device, pipeline driverapi.Handle) {
	C.vkffiDestroyPipeline(C.VkDevice(toPtr(device)), C.VkPipeline(toPtr(pipeline)))
}
