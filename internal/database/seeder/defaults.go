package seeder

func Defaults() []Seeder {
	return []Seeder{
		CompaniesSeeder{},
		SkillsSeeder{},
		SpecializationsSeeder{},
	}
}
