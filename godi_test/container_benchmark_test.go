package godi_test

import (
	"testing"

	"github.com/centraunit/godi"
	"github.com/centraunit/godi/mock"
)

func BenchmarkRegistration(b *testing.B) {
	b.Run("TransientRegistration", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			collection := godi.NewServiceCollection()
			godi.AddTransient[mock.Database](collection, func(godi.Provider) any {
				return &mock.MockDB{}
			})
		}
	})

	b.Run("SingletonRegistration", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			collection := godi.NewServiceCollection()
			godi.AddSingleton[mock.Database](collection, func(godi.Provider) any {
				return &mock.MockDB{}
			})
		}
	})
}

func BenchmarkBuild(b *testing.B) {
	collection := godi.NewServiceCollection()
	godi.AddTransient[mock.Database](collection, func(godi.Provider) any {
		return &mock.MockDB{}
	})
	godi.AddSingleton[mock.Cache](collection, func(godi.Provider) any {
		return mock.NewMockCache(nil)
	})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = collection.BuildServiceProvider()
	}
}

func BenchmarkResolution(b *testing.B) {
	b.Run("TransientResolution", func(b *testing.B) {
		collection := godi.NewServiceCollection()
		godi.AddTransient[mock.Database](collection, func(godi.Provider) any {
			return &mock.MockDB{}
		})
		provider := collection.BuildServiceProvider()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = godi.GetService[mock.Database](provider)
		}
	})

	b.Run("SingletonResolution", func(b *testing.B) {
		collection := godi.NewServiceCollection()
		godi.AddSingleton[mock.Database](collection, func(godi.Provider) any {
			return &mock.MockDB{}
		})
		provider := collection.BuildServiceProvider()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = godi.GetService[mock.Database](provider)
		}
	})

	b.Run("DependentResolution", func(b *testing.B) {
		collection := godi.NewServiceCollection()
		godi.AddSingleton[mock.Database](collection, func(godi.Provider) any {
			return &mock.MockDB{}
		})
		godi.AddTransient[mock.Cache](collection, func(p godi.Provider) any {
			db, _ := godi.GetService[mock.Database](p)
			return mock.NewMockCache(db)
		})
		provider := collection.BuildServiceProvider()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = godi.GetService[mock.Cache](provider)
		}
	})
}
