package codegen

import (
	"fmt"
	"strings"

	"github.com/genesis-engine/genesis-frontend/internal/protocol"
	"github.com/genesis-engine/genesis-frontend/internal/validate"
)

// reactLike and vueLike key the two known placeholder families.
var (
	reactLike = map[string]bool{"nextjs": true, "next": true, "react": true, "cra": true}
	vueLike   = map[string]bool{"vue": true, "vue3": true}
)

// Placeholder synthesizes a deterministic code skeleton from the generation
// context. The framework selects the skeleton family, the component name and
// specialization label are interpolated, and unknown frameworks get a stub
// comment. Identical input always yields identical output.
func (g *Generator) Placeholder(vars map[string]any) string {
	framework := strings.ToLower(protocol.StringParam(vars, "framework", string(g.spec)))
	name := validate.ComponentName(protocol.StringParam(vars, "component_name", "Component"))

	switch {
	case reactLike[framework]:
		return fmt.Sprintf(`// Generated by genesis-frontend (%s)
import React from 'react'

interface %sProps {
}

const %s: React.FC<%sProps> = () => {
  return (
    <div className="genesis-component">
      <h1>%s</h1>
    </div>
  )
}

export default %s
`, g.spec, name, name, name, name, name)
	case vueLike[framework]:
		return fmt.Sprintf(`<!-- Generated by genesis-frontend (%s) -->
<template>
  <div class="genesis-component">
    <h1>%s</h1>
  </div>
</template>

<script setup lang="ts">
</script>

<style scoped>
.genesis-component {
}
</style>
`, g.spec, name)
	default:
		return fmt.Sprintf("// Generated by genesis-frontend (%s)\n// No skeleton available for %s\n", g.spec, framework)
	}
}
