package config

import "slices"

// mergeConfigs merges override configuration into base. Lists are unioned so
// a project can only add to the global rules, and extension maps are merged
// one level deep.
func mergeConfigs(base, override *Config) *Config {
	if base == nil {
		return override
	}
	if override == nil {
		return base
	}

	result := &Config{
		Version:  base.Version,
		Classify: mergeClassify(base.Classify, override.Classify),
		Ignore:   union(base.Ignore, override.Ignore),
	}

	if override.Version != "" {
		result.Version = override.Version
	}

	if len(base.Extensions) > 0 || len(override.Extensions) > 0 {
		result.Extensions = make(map[string]interface{}, len(base.Extensions)+len(override.Extensions))
		for key, value := range base.Extensions {
			result.Extensions[key] = value
		}
		for key, value := range override.Extensions {
			baseMap, baseOk := result.Extensions[key].(map[string]interface{})
			overrideMap, overrideOk := value.(map[string]interface{})
			if baseOk && overrideOk {
				mergedMap := make(map[string]interface{}, len(baseMap)+len(overrideMap))
				for k, v := range baseMap {
					mergedMap[k] = v
				}
				for k, v := range overrideMap {
					mergedMap[k] = v
				}
				result.Extensions[key] = mergedMap
				continue
			}
			result.Extensions[key] = value
		}
	}

	return result
}

func mergeClassify(base, override *ClassifyConfig) *ClassifyConfig {
	if base == nil && override == nil {
		return nil
	}
	if base == nil {
		base = &ClassifyConfig{}
	}
	if override == nil {
		override = &ClassifyConfig{}
	}

	return &ClassifyConfig{
		PackageFiles:     union(base.PackageFiles, override.PackageFiles),
		ConfigExtensions: union(base.ConfigExtensions, override.ConfigExtensions),
		StrictDocs:       base.StrictDocs || override.StrictDocs,
	}
}

// union returns a followed by the items of b not already present.
func union(a, b []string) []string {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	result := slices.Clone(a)
	for _, item := range b {
		if !slices.Contains(result, item) {
			result = append(result, item)
		}
	}
	return result
}
